package cmd

import (
	"embed"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	globalConfig "github.com/voicebook/voicebook/config"
	"github.com/voicebook/voicebook/core/database"
	domainCache "github.com/voicebook/voicebook/domains/cache"
	domainDocument "github.com/voicebook/voicebook/domains/document"
	domainGenerate "github.com/voicebook/voicebook/domains/generate"
	domainHealth "github.com/voicebook/voicebook/domains/health"
	domainHistory "github.com/voicebook/voicebook/domains/history"
	"github.com/voicebook/voicebook/infrastructure/tts"
	"github.com/voicebook/voicebook/pkg/utils"
	"github.com/voicebook/voicebook/usecase"
)

var (
	EmbedViews embed.FS

	// Usecase
	cacheUsecase    domainCache.ICacheUsecase
	documentUsecase domainDocument.IDocumentUsecase
	generateUsecase domainGenerate.IGenerateUsecase
	historyUsecase  domainHistory.IHistoryUsecase
	healthUsecase   domainHealth.IHealthUsecase
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Short: "Document to speech converter",
	Long: `Voicebook converts documents and pasted text into speech audio
over a local web UI, with content-addressed caching so repeated
conversions never pay the API twice.`,
}

func init() {
	// Load environment variables first
	utils.LoadConfig(".")

	time.Local = time.UTC

	rootCmd.CompletionOptions.DisableDefaultCmd = true

	initFlags()

	cobra.OnInitialize(initEnvConfig, initApp)
}

// initEnvConfig loads configuration from environment variables
func initEnvConfig() {
	if envPort := viper.GetString("app_port"); envPort != "" {
		globalConfig.AppPort = envPort
	}
	if envDebug := viper.GetBool("app_debug"); envDebug {
		globalConfig.AppDebug = envDebug
	}
	envBasicAuth := viper.GetString("app_basic_auth")
	if envBasicAuth == "" {
		envBasicAuth = os.Getenv("APP_BASIC_AUTH")
	}
	if envBasicAuth != "" {
		globalConfig.AppBasicAuthCredential = strings.Split(envBasicAuth, ",")
	}
	if envBasePath := viper.GetString("app_base_path"); envBasePath != "" {
		globalConfig.AppBasePath = envBasePath
	}

	if envDriver := viper.GetString("db_driver"); envDriver != "" {
		globalConfig.DBDriver = envDriver
	}
	if envDBName := viper.GetString("db_name"); envDBName != "" {
		globalConfig.DBName = envDBName
	}
	if envDBHost := viper.GetString("db_host"); envDBHost != "" {
		globalConfig.DBHost = envDBHost
	}
	if envDBPort := viper.GetInt("db_port"); envDBPort != 0 {
		globalConfig.DBPort = envDBPort
	}
	if envDBUser := viper.GetString("db_user"); envDBUser != "" {
		globalConfig.DBUser = envDBUser
	}
	if envDBPassword := viper.GetString("db_password"); envDBPassword != "" {
		globalConfig.DBPassword = envDBPassword
	}

	if envKey := viper.GetString("openai_api_key"); envKey != "" {
		globalConfig.OpenAIAPIKey = envKey
	}
}

func initFlags() {
	rootCmd.PersistentFlags().StringVarP(
		&globalConfig.AppPort,
		"port", "p",
		globalConfig.AppPort,
		"change port number with --port <number> | example: --port=8080",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&globalConfig.AppDebug,
		"debug", "d",
		globalConfig.AppDebug,
		"hide or displaying log with --debug <true/false> | example: --debug=true",
	)
	rootCmd.PersistentFlags().StringSliceVarP(
		&globalConfig.AppBasicAuthCredential,
		"basic-auth", "b",
		globalConfig.AppBasicAuthCredential,
		"basic auth credential | -b=yourUsername:yourPassword",
	)
	rootCmd.PersistentFlags().StringVarP(
		&globalConfig.AppBasePath,
		"base-path", "",
		globalConfig.AppBasePath,
		`base path for subpath deployment --base-path <string> | example: --base-path="/voicebook"`,
	)

	rootCmd.PersistentFlags().StringVarP(
		&globalConfig.PathCache,
		"cache-dir", "",
		globalConfig.PathCache,
		`directory for cached audio artifacts --cache-dir <string> | example: --cache-dir="storages/cache"`,
	)

	rootCmd.PersistentFlags().StringVarP(
		&globalConfig.DBDriver,
		"db-driver", "",
		globalConfig.DBDriver,
		`database driver, sqlite or postgres --db-driver <string> | example: --db-driver=postgres`,
	)
	rootCmd.PersistentFlags().StringVarP(
		&globalConfig.DBName,
		"db-name", "",
		globalConfig.DBName,
		`database name, or file path for sqlite --db-name <string> | example: --db-name="storages/voicebook.db"`,
	)

	rootCmd.PersistentFlags().StringVarP(
		&globalConfig.DefaultVoice,
		"voice", "",
		globalConfig.DefaultVoice,
		`default voice when a request omits one --voice <string> | example: --voice=onyx`,
	)
}

func initApp() {
	if globalConfig.AppDebug {
		logrus.SetLevel(logrus.DebugLevel)
	}

	//preparing folder if not exist
	err := utils.CreateFolder(globalConfig.PathStorages, globalConfig.PathCache, globalConfig.PathUploads)
	if err != nil {
		logrus.Errorln(err)
	}

	db, err := database.NewDatabase()
	if err != nil {
		logrus.Fatalf("failed to open database: %v", err)
	}

	speechClient, err := tts.NewOpenAIClient(globalConfig.OpenAIAPIKey)
	if err != nil {
		logrus.Fatalf("speech client: %v", err)
	}

	cacheUsecase = usecase.NewCacheService(globalConfig.PathCache)
	documentUsecase = usecase.NewDocumentService()

	historyUsecase, err = usecase.NewHistoryService(db)
	if err != nil {
		logrus.Fatalf("failed to init history store: %v", err)
	}

	generateUsecase = usecase.NewGenerateService(speechClient, cacheUsecase, historyUsecase)
	healthUsecase = usecase.NewHealthService(db)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute(embedViews embed.FS) {
	EmbedViews = embedViews
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
