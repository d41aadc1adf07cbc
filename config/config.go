package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	// ChainEndpointKey is the endpoint where the ark REST API is listening.
	ChainEndpointKey = "CHAIN_ENDPOINT"
	// DatadirKey is the local data directory to store the account db.
	DatadirKey = "DATA_DIR_PATH"
	// LogLevelKey are the different logging levels. For reference on the values https://godoc.org/github.com/sirupsen/logrus#Level
	LogLevelKey = "LOG_LEVEL"
	// UseMockBridgeKey substitutes the mock bridges process-wide for testing.
	UseMockBridgeKey = "USE_MOCK_BRIDGE"
	// MnemonicKey is the mnemonic of the software signer used when no
	// hardware device is attached.
	MnemonicKey = "MNEMONIC"
	// AddressVersionKey is the base58check version byte of the target network.
	AddressVersionKey = "ADDRESS_VERSION"
	// SyncIntervalKey is the interval in seconds between account synchronizations.
	SyncIntervalKey = "SYNC_INTERVAL"

	// DbLocation ...
	DbLocation = "db"
)

var vip *viper.Viper

func init() {
	vip = viper.New()
	vip.SetEnvPrefix("WALLET")
	vip.AutomaticEnv()

	vip.SetDefault(ChainEndpointKey, "https://api.ark.io")
	vip.SetDefault(DatadirKey, defaultDatadir())
	vip.SetDefault(LogLevelKey, 4)
	vip.SetDefault(UseMockBridgeKey, false)
	vip.SetDefault(AddressVersionKey, 0x17)
	vip.SetDefault(SyncIntervalKey, 60)

	if err := validate(); err != nil {
		log.WithError(err).Panic("error while validating config")
	}

	if err := initDatadir(); err != nil {
		log.WithError(err).Panic("error while creating datadir")
	}
}

// GetString ...
func GetString(key string) string {
	return vip.GetString(key)
}

// GetInt ...
func GetInt(key string) int {
	return vip.GetInt(key)
}

// GetDuration ...
func GetDuration(key string) time.Duration {
	return vip.GetDuration(key)
}

// GetBool ...
func GetBool(key string) bool {
	return vip.GetBool(key)
}

// Set a value for the given key
func Set(key string, value interface{}) {
	vip.Set(key, value)
}

// IsSet returns whether the give key is set
func IsSet(key string) bool {
	return vip.IsSet(key)
}

// GetDatadir ...
func GetDatadir() string {
	return GetString(DatadirKey)
}

// GetAddressVersion returns the configured base58check version byte.
func GetAddressVersion() byte {
	return byte(GetInt(AddressVersionKey))
}

// GetMnemonic returns the currently set software signer mnemonic.
func GetMnemonic() []string {
	var mnemonic []string
	if vip.GetString(MnemonicKey) != "" {
		mnemonic = strings.Split(vip.GetString(MnemonicKey), " ")
	}

	return mnemonic
}

func validate() error {
	datadir := GetString(DatadirKey)
	if len(datadir) <= 0 {
		return fmt.Errorf("datadir must not be null")
	}
	return nil
}

func initDatadir() error {
	return makeDirectoryIfNotExists(filepath.Join(GetDatadir(), DbLocation))
}

func makeDirectoryIfNotExists(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return os.MkdirAll(path, os.ModeDir|0755)
	}
	return nil
}

func defaultDatadir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".wallet-daemon"
	}
	return filepath.Join(home, ".wallet-daemon")
}
