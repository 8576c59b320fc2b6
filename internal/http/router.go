package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/yungbote/labstock-backend/internal/http/handlers"
	httpMW "github.com/yungbote/labstock-backend/internal/http/middleware"
	"github.com/yungbote/labstock-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log *logger.Logger

	ServiceName  string
	AllowOrigins []string
	UploadDir    string
	MaxUploadMB  int

	HealthHandler     *httpH.HealthHandler
	CalculatorHandler *httpH.CalculatorHandler
	RecordHandler     *httpH.RecordHandler
	FridgeHandler     *httpH.FridgeHandler
	TransferHandler   *httpH.TransferHandler
	LayoutHandler     *httpH.LayoutHandler
	SchematicHandler  *httpH.SchematicHandler
	AntibodyHandler   *httpH.AntibodyHandler
	SettingHandler    *httpH.SettingHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = "labstock"
	}
	maxUploadMB := cfg.MaxUploadMB
	if maxUploadMB <= 0 {
		maxUploadMB = 16
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(otelgin.Middleware(serviceName))
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.CORS(cfg.AllowOrigins))
	r.Use(httpMW.BodyLimit(int64(maxUploadMB) << 20))
	r.MaxMultipartMemory = int64(maxUploadMB) << 20

	// Uploaded fridge photos are served straight off disk.
	if cfg.UploadDir != "" {
		r.Static("/static/fridge_photos", cfg.UploadDir)
	}

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthz", cfg.HealthHandler.Health)
	}

	// CSV transfer
	if cfg.TransferHandler != nil {
		r.GET("/export/csv", cfg.TransferHandler.ExportCSV)
		r.POST("/import/csv", cfg.TransferHandler.ImportCSV)
	}

	api := r.Group("/api")
	{
		// Inventory records
		if cfg.RecordHandler != nil {
			api.GET("/records", cfg.RecordHandler.List)
			api.POST("/record", cfg.RecordHandler.Create)
			api.GET("/record/:id", cfg.RecordHandler.Get)
			api.PUT("/record/:id", cfg.RecordHandler.Update)
			api.DELETE("/record/:id", cfg.RecordHandler.Delete)
		}

		// Storage grids and fridge units
		if cfg.FridgeHandler != nil {
			api.GET("/fridge/grid/:temp_key", cfg.FridgeHandler.Grid)
			api.GET("/fridge/config", cfg.FridgeHandler.Configs)
			api.PUT("/fridge/config/:temp_key", cfg.FridgeHandler.UpdateConfig)
			api.GET("/location/:temp_key/:section/:row/:col", cfg.FridgeHandler.LocationItems)

			api.GET("/fridges", cfg.FridgeHandler.ListFridges)
			api.POST("/fridges", cfg.FridgeHandler.CreateFridge)
			api.GET("/fridges/by-temp/:temp_type", cfg.FridgeHandler.FridgesByTemp)
			api.GET("/fridges/:id", cfg.FridgeHandler.GetFridge)
			api.PUT("/fridges/:id", cfg.FridgeHandler.UpdateFridge)
			api.DELETE("/fridges/:id", cfg.FridgeHandler.DeleteFridge)
		}

		// Calculators
		if cfg.CalculatorHandler != nil {
			api.POST("/calculator/dilution", cfg.CalculatorHandler.Dilution)
			api.POST("/calculator/actual-concentration", cfg.CalculatorHandler.ActualConcentration)
		}

		// Photo layouts and regions. The GET tree shares one :key segment:
		// it holds the layout id for /regions and the temp key otherwise.
		if cfg.LayoutHandler != nil {
			api.POST("/layout/upload", cfg.LayoutHandler.UploadPhoto)
			api.GET("/layout/:key/regions", cfg.LayoutHandler.Regions)
			api.GET("/layout/:key/:section", cfg.LayoutHandler.View)
			api.POST("/layout/:layout_id/region", cfg.LayoutHandler.CreateRegion)
			api.GET("/region/:region_id/items", cfg.LayoutHandler.RegionItems)
			api.POST("/region/:region_id/assign", cfg.LayoutHandler.AssignToRegion)
			api.PUT("/region/:region_id", cfg.LayoutHandler.UpdateRegion)
			api.DELETE("/region/:region_id", cfg.LayoutHandler.DeleteRegion)
		}

		// Schematic layouts and zones
		if cfg.SchematicHandler != nil {
			api.POST("/schematic/create", cfg.SchematicHandler.Create)
			api.POST("/schematic/upload-reference", cfg.SchematicHandler.UploadReference)
			api.GET("/schematic/fridge/:fridge_id/:section", cfg.SchematicHandler.ViewByFridge)
			api.GET("/schematic/zone/:zone_id/items", cfg.SchematicHandler.ZoneItems)
			api.POST("/schematic/zone/:zone_id/assign", cfg.SchematicHandler.AssignToZone)
			api.POST("/schematic/:layout_id/zones", cfg.SchematicHandler.ReplaceZones)
			api.GET("/schematic/:temp_key/:section", cfg.SchematicHandler.View)
		}

		// Antibodies
		if cfg.AntibodyHandler != nil {
			api.GET("/antibodies/primary", cfg.AntibodyHandler.ListPrimaries)
			api.POST("/antibodies/primary", cfg.AntibodyHandler.CreatePrimary)
			api.GET("/antibodies/primary/:id", cfg.AntibodyHandler.GetPrimary)
			api.PUT("/antibodies/primary/:id", cfg.AntibodyHandler.UpdatePrimary)
			api.DELETE("/antibodies/primary/:id", cfg.AntibodyHandler.DeletePrimary)

			api.GET("/antibodies/secondary", cfg.AntibodyHandler.ListSecondaries)
			api.POST("/antibodies/secondary", cfg.AntibodyHandler.CreateSecondary)
			api.GET("/antibodies/secondary/:id", cfg.AntibodyHandler.GetSecondary)
			api.PUT("/antibodies/secondary/:id", cfg.AntibodyHandler.UpdateSecondary)
			api.DELETE("/antibodies/secondary/:id", cfg.AntibodyHandler.DeleteSecondary)

			api.GET("/antibodies/match/:primary_id", cfg.AntibodyHandler.MatchingSecondaries)
		}

		// Settings
		if cfg.SettingHandler != nil {
			api.GET("/settings", cfg.SettingHandler.All)
			api.POST("/settings", cfg.SettingHandler.SetAll)
			api.GET("/settings/:key", cfg.SettingHandler.Get)
		}
	}

	return r
}
