package upload_fx

import (
	"go.uber.org/fx"
	"tripmate/internal/api/controllers"
	"tripmate/internal/services"
)

var Module = fx.Provide(
	provideUploadService, provideUploadController)

func provideUploadService() services.UploadServiceInterface {
	return services.NewUploadService()
}

func provideUploadController(uploadService services.UploadServiceInterface) *controllers.UploadController {
	return controllers.NewUploadController(uploadService)
}
