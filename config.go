package main

import (
	"flag"
	"os"
	"slices"
	"strings"

	"github.com/joho/godotenv"
)

const (
	VERSION = "1.0.0"

	ENV_API_KEY       = "HD_API_KEY"
	ENV_API_SECRET    = "HD_API_SECRET"
	ENV_MVENDOR_ID    = "HD_MVENDOR_ID"
	ENV_DAYS_BACK     = "HDLEADS_DAYS_BACK"
	ENV_STATUS_FILTER = "HDLEADS_STATUS_FILTER"
	ENV_PAGE_SIZE     = "HDLEADS_PAGE_SIZE"
	ENV_REPLACE       = "HDLEADS_REPLACE"
	ENV_CSV_FILE      = "HDLEADS_CSV_FILE"
	ENV_SYNC_INTERVAL = "HDLEADS_SYNC_INTERVAL"
	ENV_LOG_LEVEL     = "HDLEADS_LOG_LEVEL"
	ENV_STORAGE_TYPE  = "HDLEADS_STORAGE_TYPE"
	ENV_STORAGE_PATH  = "HDLEADS_STORAGE_PATH"

	ENV_GOOGLE_CREDENTIALS_FILE = "GOOGLE_CREDENTIALS_FILE"
	ENV_SPREADSHEET_ID          = "SPREADSHEET_ID"
	ENV_SHEET_NAME              = "SHEET_NAME"

	ENV_AWS_REGION            = "AWS_REGION"
	ENV_AWS_S3_ENDPOINT       = "AWS_S3_ENDPOINT"
	ENV_AWS_S3_BUCKET         = "AWS_S3_BUCKET"
	ENV_AWS_ACCESS_KEY_ID     = "AWS_ACCESS_KEY_ID"
	ENV_AWS_SECRET_ACCESS_KEY = "AWS_SECRET_ACCESS_KEY"

	DEFAULT_LOG_LEVEL        = "INFO"
	DEFAULT_MVENDOR_ID       = "50020059"
	DEFAULT_DAYS_BACK        = 7
	DEFAULT_PAGE_SIZE        = 100
	DEFAULT_CREDENTIALS_FILE = "credentials.json"
	DEFAULT_SHEET_NAME       = "Leads"
	DEFAULT_STORAGE_PATH     = "exports"
	DEFAULT_AWS_S3_ENDPOINT  = "s3.amazonaws.com"

	MAX_PAGE_SIZE = 100

	STORAGE_TYPE_LOCAL = "LOCAL"
	STORAGE_TYPE_S3    = "S3"
)

type HomeDepotConfig struct {
	ApiKey       string
	ApiSecret    string
	MvendorId    string
	DaysBack     int
	StatusFilter string
	PageSize     int
	SyncInterval string
}

type GoogleConfig struct {
	CredentialsFile string
	SpreadsheetId   string
	SheetName       string
}

type AwsConfig struct {
	Region          string
	S3Endpoint      string
	S3Bucket        string
	AccessKeyId     string
	SecretAccessKey string
}

type Config struct {
	LogLevel    string
	Replace     bool
	CsvFile     string
	StorageType string
	StoragePath string
	HomeDepot   HomeDepotConfig
	Google      GoogleConfig
	Aws         AwsConfig
}

var _config Config

func init() {
	_ = godotenv.Load()
	registerFlags()
}

func registerFlags() {
	flag.StringVar(&_config.LogLevel, "log-level", os.Getenv(ENV_LOG_LEVEL), `Log level: "ERROR", "WARN", "INFO", "DEBUG", "TRACE". Default: "`+DEFAULT_LOG_LEVEL+`"`)
	flag.StringVar(&_config.CsvFile, "csv", os.Getenv(ENV_CSV_FILE), "Export leads to this CSV file instead of Google Sheets")
	flag.BoolVar(&_config.Replace, "replace", os.Getenv(ENV_REPLACE) == "true", "Replace all sheet rows instead of appending new leads")
	flag.StringVar(&_config.StorageType, "storage-type", os.Getenv(ENV_STORAGE_TYPE), `Storage type for CSV exports: "LOCAL", "S3". Default: "`+STORAGE_TYPE_LOCAL+`"`)
	flag.StringVar(&_config.StoragePath, "storage-path", os.Getenv(ENV_STORAGE_PATH), `Path for CSV exports with LOCAL storage. Default: "`+DEFAULT_STORAGE_PATH+`"`)

	flag.StringVar(&_config.HomeDepot.ApiKey, "api-key", os.Getenv(ENV_API_KEY), "Home Depot API key")
	flag.StringVar(&_config.HomeDepot.ApiSecret, "api-secret", os.Getenv(ENV_API_SECRET), "Home Depot API secret")
	flag.StringVar(&_config.HomeDepot.MvendorId, "mvendor-id", os.Getenv(ENV_MVENDOR_ID), `MVendor number identifying the service provider. Default: "`+DEFAULT_MVENDOR_ID+`"`)
	flag.StringVar(&_config.HomeDepot.StatusFilter, "status", os.Getenv(ENV_STATUS_FILTER), `Only fetch leads with this workflow status, e.g. "New". Default: all statuses`)
	flag.StringVar(&_config.HomeDepot.SyncInterval, "sync-interval", os.Getenv(ENV_SYNC_INTERVAL), "Interval between syncs. Valid units: h, m, s. Default: run once and exit")

	flag.IntVar(&_config.HomeDepot.DaysBack, "days", DEFAULT_DAYS_BACK, "Fetch leads created within the last N days")
	daysBack := os.Getenv(ENV_DAYS_BACK)
	if daysBack != "" {
		_config.HomeDepot.DaysBack = StringToInt(daysBack)
	}

	flag.IntVar(&_config.HomeDepot.PageSize, "page-size", DEFAULT_PAGE_SIZE, "Number of leads to request per lookup page")
	pageSize := os.Getenv(ENV_PAGE_SIZE)
	if pageSize != "" {
		_config.HomeDepot.PageSize = StringToInt(pageSize)
	}

	flag.StringVar(&_config.Google.CredentialsFile, "google-credentials-file", os.Getenv(ENV_GOOGLE_CREDENTIALS_FILE), `Path to the Google service account JSON key. Default: "`+DEFAULT_CREDENTIALS_FILE+`"`)
	flag.StringVar(&_config.Google.SpreadsheetId, "spreadsheet-id", os.Getenv(ENV_SPREADSHEET_ID), "Google Sheets spreadsheet ID. Default: export to CSV instead")
	flag.StringVar(&_config.Google.SheetName, "sheet-name", os.Getenv(ENV_SHEET_NAME), `Sheet tab to sync leads into. Default: "`+DEFAULT_SHEET_NAME+`"`)

	flag.StringVar(&_config.Aws.Region, "aws-region", os.Getenv(ENV_AWS_REGION), "AWS region")
	flag.StringVar(&_config.Aws.S3Endpoint, "aws-s3-endpoint", os.Getenv(ENV_AWS_S3_ENDPOINT), `AWS S3 endpoint. Default: "`+DEFAULT_AWS_S3_ENDPOINT+`"`)
	flag.StringVar(&_config.Aws.S3Bucket, "aws-s3-bucket", os.Getenv(ENV_AWS_S3_BUCKET), "AWS S3 bucket name")
	flag.StringVar(&_config.Aws.AccessKeyId, "aws-access-key-id", os.Getenv(ENV_AWS_ACCESS_KEY_ID), "AWS access key ID")
	flag.StringVar(&_config.Aws.SecretAccessKey, "aws-secret-access-key", os.Getenv(ENV_AWS_SECRET_ACCESS_KEY), "AWS secret access key")
}

func parseFlags() {
	flag.Parse()

	if _config.LogLevel == "" {
		_config.LogLevel = DEFAULT_LOG_LEVEL
	} else if !slices.Contains(LOG_LEVELS, _config.LogLevel) {
		panic("Invalid log level " + _config.LogLevel + ". Must be one of " + strings.Join(LOG_LEVELS, ", "))
	}

	if _config.HomeDepot.ApiKey == "" {
		panic("Home Depot API key is required")
	}
	if _config.HomeDepot.ApiSecret == "" {
		panic("Home Depot API secret is required")
	}
	if _config.HomeDepot.MvendorId == "" {
		_config.HomeDepot.MvendorId = DEFAULT_MVENDOR_ID
	}
	if _config.HomeDepot.DaysBack < 0 {
		panic("Days cannot be negative")
	}
	if _config.HomeDepot.PageSize < 1 || _config.HomeDepot.PageSize > MAX_PAGE_SIZE {
		panic("Page size must be between 1 and " + IntToString(MAX_PAGE_SIZE))
	}

	if _config.Google.CredentialsFile == "" {
		_config.Google.CredentialsFile = DEFAULT_CREDENTIALS_FILE
	}
	if _config.Google.SheetName == "" {
		_config.Google.SheetName = DEFAULT_SHEET_NAME
	}

	if _config.StorageType == "" {
		_config.StorageType = STORAGE_TYPE_LOCAL
	} else if _config.StorageType != STORAGE_TYPE_LOCAL && _config.StorageType != STORAGE_TYPE_S3 {
		panic("Invalid storage type " + _config.StorageType + ". Must be one of " + STORAGE_TYPE_LOCAL + ", " + STORAGE_TYPE_S3)
	}
	if _config.StoragePath == "" {
		_config.StoragePath = DEFAULT_STORAGE_PATH
	}

	if _config.StorageType == STORAGE_TYPE_S3 {
		if _config.Aws.Region == "" {
			panic("AWS region is required")
		}
		if _config.Aws.S3Endpoint == "" {
			_config.Aws.S3Endpoint = DEFAULT_AWS_S3_ENDPOINT
		}
		if _config.Aws.S3Bucket == "" {
			panic("AWS S3 bucket name is required")
		}
		if _config.Aws.AccessKeyId != "" && _config.Aws.SecretAccessKey == "" {
			panic("AWS secret access key is required")
		}
		if _config.Aws.AccessKeyId == "" && _config.Aws.SecretAccessKey != "" {
			panic("AWS access key ID is required")
		}
	}
}

func LoadConfig() *Config {
	parseFlags()
	return &_config
}
