package app

import (
	labhttp "github.com/yungbote/labstock-backend/internal/http"
	httpH "github.com/yungbote/labstock-backend/internal/http/handlers"
	"github.com/yungbote/labstock-backend/internal/platform/logger"
)

type Handlers struct {
	Health     *httpH.HealthHandler
	Calculator *httpH.CalculatorHandler
	Record     *httpH.RecordHandler
	Fridge     *httpH.FridgeHandler
	Transfer   *httpH.TransferHandler
	Layout     *httpH.LayoutHandler
	Schematic  *httpH.SchematicHandler
	Antibody   *httpH.AntibodyHandler
	Setting    *httpH.SettingHandler
}

func wireHandlers(log *logger.Logger, services Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:     httpH.NewHealthHandler(),
		Calculator: httpH.NewCalculatorHandler(),
		Record:     httpH.NewRecordHandler(services.Record),
		Fridge:     httpH.NewFridgeHandler(services.Fridge),
		Transfer:   httpH.NewTransferHandler(log, services.Transfer),
		Layout:     httpH.NewLayoutHandler(log, services.Layout),
		Schematic:  httpH.NewSchematicHandler(log, services.Schematic),
		Antibody:   httpH.NewAntibodyHandler(services.Antibody),
		Setting:    httpH.NewSettingHandler(services.Setting),
	}
}

func wireServer(log *logger.Logger, cfg Config, handlers Handlers) *labhttp.Server {
	return labhttp.NewServer(labhttp.RouterConfig{
		Log:          log,
		ServiceName:  "labstock",
		AllowOrigins: cfg.AllowOrigins,
		UploadDir:    cfg.UploadDir,
		MaxUploadMB:  cfg.MaxUploadMB,

		HealthHandler:     handlers.Health,
		CalculatorHandler: handlers.Calculator,
		RecordHandler:     handlers.Record,
		FridgeHandler:     handlers.Fridge,
		TransferHandler:   handlers.Transfer,
		LayoutHandler:     handlers.Layout,
		SchematicHandler:  handlers.Schematic,
		AntibodyHandler:   handlers.Antibody,
		SettingHandler:    handlers.Setting,
	})
}
