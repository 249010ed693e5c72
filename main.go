package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/beka-birhanu/vinom-maze/api"
	api_i "github.com/beka-birhanu/vinom-maze/api/i"
	"github.com/beka-birhanu/vinom-maze/api/identity"
	"github.com/beka-birhanu/vinom-maze/api/mazeapi"
	"github.com/beka-birhanu/vinom-maze/config"
	"github.com/beka-birhanu/vinom-maze/infrastruture/repo"
	"github.com/beka-birhanu/vinom-maze/infrastruture/sortedstorage"
	"github.com/beka-birhanu/vinom-maze/infrastruture/token"
	"github.com/beka-birhanu/vinom-maze/service"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Global variables for dependencies
var (
	envs               config.Config
	redisClient        *redis.Client
	mongoClient        *mongo.Client
	playerRepo         i.PlayerRepo
	recordStore        i.RecordStore
	mazeSessionManager *service.MazeSessionManager
	jwtTokenizer       i.Tokenizer
	authService        i.Authenticator
	identityController api_i.Controller
	mazeController     api_i.Controller
	router             *api.Router
	appLogger          *log.Logger
)

func newLogger(name, color string) *log.Logger {
	return log.New(os.Stdout, fmt.Sprintf("%s[%s]%s ", color, name, config.ColorReset), log.LstdFlags)
}

func fatal(format string, args ...any) {
	appLogger.Printf("%s[ERROR]%s %s", config.LogErrorColor, config.LogColorReset, fmt.Sprintf(format, args...))
	os.Exit(1)
}

func info(msg string) {
	appLogger.Printf("%s[INFO]%s %s", config.LogInfoColor, config.LogColorReset, msg)
}

func initRedis(ctx context.Context) {
	redisClient = redis.NewClient(&redis.Options{
		Addr:     envs.RedisAddr,
		Password: envs.RedisPassword,
		DB:       envs.RedisDB,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		fatal("Redis ping failed: %v", err)
	}
	info("Connected to Redis")
}

// initMongo connects to the player database. Without DB_HOST the server
// runs with guest tokens only.
func initMongo(ctx context.Context) {
	if envs.DBHost == "" {
		info("DB_HOST not set, player accounts disabled")
		return
	}

	uri := fmt.Sprintf("mongodb://%s:%s@%s:%v", envs.DBUser, envs.DBPassword, envs.DBHost, envs.DBPort)
	var err error
	mongoClient, err = mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		fatal("Failed to connect to MongoDB: %v", err)
	}
	if err = mongoClient.Ping(ctx, nil); err != nil {
		fatal("MongoDB ping failed: %v", err)
	}
	info("Connected to MongoDB")
}

func initPlayerRepo(ctx context.Context) {
	if mongoClient == nil {
		return
	}

	players := repo.NewPlayerRepo(mongoClient, envs.DBName, "players")
	if err := players.EnsureIndexes(ctx); err != nil {
		fatal("Creating player indexes: %v", err)
	}
	playerRepo = players
	info("Player repository initialized")
}

func initRecordStore() {
	var err error
	recordStore, err = sortedstorage.NewRedisRecordStore(redisClient, envs.RecordsCapacity)
	if err != nil {
		fatal("Creating record store: %v", err)
	}
	info("Record store initialized")
}

func initSessionManager() {
	var err error
	mazeSessionManager, err = service.NewMazeSessionManager(&service.Config{
		Records:       recordStore,
		Logger:        newLogger("SESSION-MANAGER", config.ColorCyan),
		DefaultWidth:  envs.MazeWidth,
		DefaultHeight: envs.MazeHeight,
		MaxDimension:  envs.MazeMaxDimension,
	})
	if err != nil {
		fatal("Creating session manager: %v", err)
	}
	info("Session manager initialized")
}

func initJWTTokenizer() {
	jwtTokenizer = token.NewJwtService(envs.JWTSecret, envs.JWTIssuer)
	info("JWT Tokenizer initialized")
}

func initAuthService() {
	var err error
	authService, err = service.NewAuthService(playerRepo, jwtTokenizer, time.Duration(envs.TokenTTLMinutes)*time.Minute)
	if err != nil {
		fatal("Creating auth service: %v", err)
	}
	info("Auth service initialized")
}

func initControllers() {
	identityController = identity.NewIdentityServer(authService)
	mazeController = mazeapi.NewMazeController(mazeSessionManager)
	info("Controllers initialized")
}

func initRouter(t i.Tokenizer) {
	gin.SetMode(envs.GinMode)
	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", envs.HostIP, envs.RESTPort),
		BaseURL:                 "/api",
		Controllers:             []api_i.Controller{identityController, mazeController},
		AuthorizationMiddleware: identity.Authoriz(t),
	})
	info("Router initialized")
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	appLogger = newLogger("APP", config.ColorGreen)
	envs = config.Load()

	initRedis(ctx)
	defer redisClient.Close()

	initMongo(ctx)
	defer func() {
		if mongoClient != nil {
			_ = mongoClient.Disconnect(context.Background())
		}
	}()
	initPlayerRepo(ctx)

	initRecordStore()
	initSessionManager()
	initJWTTokenizer()
	initAuthService()
	initControllers()
	initRouter(jwtTokenizer)

	// Run HTTP server
	if err := router.Run(); err != nil {
		fatal("Starting server: %v", err)
	}
}
