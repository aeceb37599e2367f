// Copyright (c) vlavrik
// SPDX-License-Identifier: BSD-3-Clause

package cli

import (
	"io"
	"net/url"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml"
	"github.com/spf13/cobra"
	"github.com/vlavrik/flespi-gateway/pkg/errors"
	fgxsdk "github.com/vlavrik/flespi-gateway/pkg/sdk/go"
)

type remotes struct {
	GatewayURL      string `toml:"gateway_url"`
	TLSVerification bool   `toml:"tls_verification"`
}

type filter struct {
	Fields string `toml:"fields"`
	Limit  string `toml:"limit"`
	From   string `toml:"from"`
	To     string `toml:"to"`
}

type config struct {
	Remotes     remotes `toml:"remotes"`
	Filter      filter  `toml:"filter"`
	FlespiToken string  `toml:"flespi_token"`
	Timezone    string  `toml:"timezone"`
	RawOutput   string  `toml:"raw_output"`
}

// Readable by all user groups but writeable by the user only.
const filePermission = 0o644

var (
	errReadFail            = errors.New("failed to read config file")
	errNoKey               = errors.New("no such key")
	errUnsupportedKeyValue = errors.New("unsupported data type for key")
	errWritingConfig       = errors.New("error in writing the updated config to file")
	errInvalidURL          = errors.New("invalid url")
	errURLParseFail        = errors.New("failed to parse url")
	defaultConfigPath      = "./config.toml"
)

func read(file string) (config, error) {
	c := config{}
	data, err := os.Open(file)
	if err != nil {
		return c, errors.Wrap(errReadFail, err)
	}
	defer data.Close()

	buf, err := io.ReadAll(data)
	if err != nil {
		return c, errors.Wrap(errReadFail, err)
	}

	if err := toml.Unmarshal(buf, &c); err != nil {
		return config{}, err
	}

	return c, nil
}

// ParseConfig - parses the config file.
func ParseConfig(sdkConf fgxsdk.Config) (fgxsdk.Config, error) {
	if ConfigPath == "" {
		ConfigPath = defaultConfigPath
	}

	_, err := os.Stat(ConfigPath)
	switch {
	// If the file does not exist, create it with default values.
	case os.IsNotExist(err):
		defaultConfig := config{
			Remotes: remotes{
				GatewayURL:      "https://flespi.io",
				TLSVerification: true,
			},
		}
		buf, err := toml.Marshal(defaultConfig)
		if err != nil {
			return sdkConf, err
		}
		if err = os.WriteFile(ConfigPath, buf, filePermission); err != nil {
			return sdkConf, errors.Wrap(errWritingConfig, err)
		}
	case err != nil:
		return sdkConf, err
	}

	config, err := read(ConfigPath)
	if err != nil {
		return sdkConf, err
	}

	if config.Filter.Fields != "" {
		Fields = config.Filter.Fields
	}

	if config.Filter.Limit != "" {
		limit, err := strconv.ParseUint(config.Filter.Limit, 10, 64)
		if err != nil {
			return sdkConf, err
		}
		Limit = limit
	}

	if config.Filter.From != "" {
		from, err := strconv.ParseInt(config.Filter.From, 10, 64)
		if err != nil {
			return sdkConf, err
		}
		From = from
	}

	if config.Filter.To != "" {
		to, err := strconv.ParseInt(config.Filter.To, 10, 64)
		if err != nil {
			return sdkConf, err
		}
		To = to
	}

	if config.FlespiToken != "" {
		Token = config.FlespiToken
	}

	if config.Timezone != "" {
		Timezone = config.Timezone
	}

	if config.RawOutput != "" {
		rawOutput, err := strconv.ParseBool(config.RawOutput)
		if err != nil {
			return sdkConf, err
		}
		RawOutput = rawOutput
	}

	if config.Remotes.GatewayURL != "" {
		sdkConf.GatewayURL = config.Remotes.GatewayURL
	}
	sdkConf.TLSVerification = config.Remotes.TLSVerification

	return sdkConf, nil
}

// NewConfigCmd returns config command to store params to local TOML file.
func NewConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config <key> <value>",
		Short: "CLI local config",
		Long:  "Local param storage to prevent repetitive passing of keys",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 2 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}

			if err := setConfigValue(args[0], args[1]); err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			logOKCmd(*cmd)
		},
	}
}

func setConfigValue(key, value string) error {
	config, err := read(ConfigPath)
	if err != nil {
		return err
	}

	if strings.Contains(key, "url") {
		u, err := url.Parse(value)
		if err != nil {
			return errors.Wrap(errInvalidURL, err)
		}
		if u.Scheme == "" || u.Host == "" {
			return errors.Wrap(errInvalidURL, err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return errors.Wrap(errURLParseFail, err)
		}
	}

	configKeyToField := map[string]interface{}{
		"gateway_url":      &config.Remotes.GatewayURL,
		"tls_verification": &config.Remotes.TLSVerification,
		"fields":           &config.Filter.Fields,
		"limit":            &config.Filter.Limit,
		"from":             &config.Filter.From,
		"to":               &config.Filter.To,
		"flespi_token":     &config.FlespiToken,
		"timezone":         &config.Timezone,
		"raw_output":       &config.RawOutput,
	}

	fieldPtr, ok := configKeyToField[key]
	if !ok {
		return errNoKey
	}

	fieldValue := reflect.ValueOf(fieldPtr).Elem()

	switch fieldValue.Kind() {
	case reflect.String:
		fieldValue.SetString(value)
	case reflect.Bool:
		boolValue, err := strconv.ParseBool(value)
		if err != nil {
			return err
		}
		fieldValue.SetBool(boolValue)
	default:
		return errors.Wrap(errUnsupportedKeyValue, err)
	}

	buf, err := toml.Marshal(config)
	if err != nil {
		return err
	}

	if err = os.WriteFile(ConfigPath, buf, filePermission); err != nil {
		return errors.Wrap(errWritingConfig, err)
	}

	return nil
}
