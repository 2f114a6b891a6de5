package api

import (
	"context"
	"crypto/rsa"
	"net/http"
	"time"

	"github.com/RichardKnop/machinery/v1"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/lifelink-inc/lifelink-api/external/classifier"
	"github.com/lifelink-inc/lifelink-api/external/onesignal"
	"github.com/lifelink-inc/lifelink-api/external/overpass"
	"github.com/lifelink-inc/lifelink-api/logmodule"
	"github.com/lifelink-inc/lifelink-api/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	mongoStore store.LifeLinkStore

	// JWT private key
	jwtPrivateKey *rsa.PrivateKey

	// External services
	oneSignalClient  *onesignal.OneSignalClient
	overpassClient   *overpass.Client
	classifierClient *classifier.Client

	// job pool enqueuer
	background *machinery.Server

	// http client for calling external services
	httpClient *http.Client
}

// NewServer new instance of server
func NewServer(
	mongoClient *mongo.Client,
	backgroundEnqueuer *machinery.Server,
	jwtKey *rsa.PrivateKey) *Server {
	httpClient := &http.Client{
		Timeout: 2 * time.Minute,
	}

	return &Server{
		mongoStore:      store.NewLifeLinkStore(mongoClient, viper.GetString("mongo.database")),
		jwtPrivateKey:   jwtKey,
		httpClient:      httpClient,
		oneSignalClient: onesignal.NewClient(httpClient),
		overpassClient:  overpass.New(httpClient, viper.GetStringSlice("overpass.endpoints")),
		classifierClient: classifier.New(
			httpClient,
			viper.GetString("classifier.endpoint"),
			viper.GetString("classifier.model"),
			viper.GetString("classifier.apikey"),
		),
		background: backgroundEnqueuer,
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))
	apiRoute.POST("/auth", s.requestJWT)

	// api route other than `/auth` will apply the following middleware
	apiRoute.Use(s.authMiddleware())
	apiRoute.Use(s.updateGeoPositionMiddleware)

	accountRoute := apiRoute.Group("/accounts")
	{
		accountRoute.POST("", s.accountRegister)
	}

	accountRoute.Use(s.recognizeAccountMiddleware())
	{
		accountRoute.GET("/me", s.accountDetail)
		accountRoute.PATCH("/me", s.accountUpdate)
		accountRoute.DELETE("/me", s.accountDelete)
	}

	requestRoute := apiRoute.Group("/requests")
	{
		requestRoute.POST("", s.createRequest)
		requestRoute.GET("/current", s.currentRequest)
		requestRoute.GET("/:requestID", s.getRequest)
		requestRoute.PATCH("/:requestID", s.answerRequest)
		requestRoute.GET("/:requestID/matches", s.listMatches)
		requestRoute.GET("/:requestID/matches/live", s.liveMatches)
		requestRoute.POST("/:requestID/handshakes", s.createHandshake)
		requestRoute.GET("/:requestID/handshakes", s.listRequestHandshakes)
	}

	stockRoute := apiRoute.Group("/stocks")
	{
		stockRoute.PUT("", s.upsertStock)
		stockRoute.GET("", s.listOwnStock)
		stockRoute.DELETE("", s.deleteStock)
	}

	handshakeRoute := apiRoute.Group("/handshakes")
	{
		handshakeRoute.GET("", s.listOrgHandshakes)
		handshakeRoute.GET("/badge", s.handshakeBadge)
		handshakeRoute.PATCH("/:handshakeID", s.resolveHandshake)
	}

	campRoute := apiRoute.Group("/camps")
	{
		campRoute.GET("", s.listNearbyCamps)
		campRoute.POST("", s.createCamp)
		campRoute.DELETE("/:campID", s.closeCamp)
		campRoute.POST("/:campID/registrations", s.registerForCamp)
		campRoute.GET("/:campID/registrations", s.listCampRegistrations)
	}

	shopRoute := apiRoute.Group("/shops")
	{
		shopRoute.GET("", s.listNearbyShops)
		shopRoute.POST("", s.createShop)
		shopRoute.POST("/:shopID/views", s.recordShopView)
		shopRoute.POST("/:shopID/clicks", s.recordShopClick)
		shopRoute.GET("/:shopID/stats", s.shopStats)
	}

	hospitalRoute := apiRoute.Group("/hospitals")
	{
		hospitalRoute.GET("", s.listNearbyHospitals)
	}

	placeRoute := apiRoute.Group("/places")
	{
		placeRoute.GET("", s.lookupPlace)
	}

	secretRoute := r.Group("/secret")
	secretRoute.Use(logmodule.Ginrus("Secret"))
	secretRoute.Use(s.apikeyAuthentication(viper.GetString("server.apikey.admin")))
	{
		secretRoute.GET("/archives", s.adminListArchives)
		secretRoute.DELETE("/archives/:archiveID", s.adminDeleteArchive)
		secretRoute.POST("/reconcile", s.adminTriggerReconcile)
	}

	metricRoute := r.Group("/metrics")
	metricRoute.Use(logmodule.Ginrus("Metric"))
	metricRoute.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET"},
		AllowHeaders:     []string{"Origin"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowAllOrigins:  true,
		MaxAge:           12 * time.Hour,
	}))
	metricRoute.Use(s.apikeyAuthentication(viper.GetString("server.apikey.metric")))
	{
		metricRoute.GET("/archives/count", s.metricArchiveCount)
	}

	r.GET("/healthz", s.healthz)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	log.Error(err)
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
	return true
}

func (s *Server) healthz(c *gin.Context) {
	// Ping db
	err := s.mongoStore.Ping()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	acceptEncoding := c.GetHeader("Accept-Encoding")
	switch acceptEncoding {
	default:
		c.JSON(code, obj)
	}
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
