package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the on-disk JSON layout.
type StructuredJSONConfig struct {
	Storage struct {
		DBType   string `json:"dbtype"`
		Host     string `json:"host"`
		Port     int    `json:"port"`
		DBName   string `json:"dbname"`
		UserID   string `json:"userid"`
		Password string `json:"password"`
		DSN      string `json:"dsn"`
	} `json:"storage,omitempty"`

	Remote struct {
		AccountID      string   `json:"accountid"`
		Password       string   `json:"trivapwd"`
		Environment    string   `json:"environment"`
		APIURL         string   `json:"api_url"`
		AuthScheme     string   `json:"auth_scheme"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"remote,omitempty"`

	Sync struct {
		ClientIDs  []string `json:"clientids"`
		ProjectIDs []string `json:"projectids"`
		Datasets   []string `json:"datasets"`
		Repeat     int      `json:"repeat"`
	} `json:"sync,omitempty"`

	Log struct {
		Level string `json:"level"`
		File  string `json:"file"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Storage: Storage{
			DBType:   jsonCfg.Storage.DBType,
			Host:     jsonCfg.Storage.Host,
			Port:     jsonCfg.Storage.Port,
			DBName:   jsonCfg.Storage.DBName,
			UserID:   jsonCfg.Storage.UserID,
			Password: jsonCfg.Storage.Password,
			DSN:      jsonCfg.Storage.DSN,
		},
		Remote: Remote{
			AccountID:      jsonCfg.Remote.AccountID,
			Password:       jsonCfg.Remote.Password,
			Environment:    jsonCfg.Remote.Environment,
			APIURL:         jsonCfg.Remote.APIURL,
			AuthScheme:     jsonCfg.Remote.AuthScheme,
			RequestTimeout: time.Duration(jsonCfg.Remote.RequestTimeout),
		},
		Sync: Sync{
			ClientIDs:  jsonCfg.Sync.ClientIDs,
			ProjectIDs: jsonCfg.Sync.ProjectIDs,
			Datasets:   jsonCfg.Sync.Datasets,
			Repeat:     jsonCfg.Sync.Repeat,
		},
		Log: Log{
			Level: jsonCfg.Log.Level,
			File:  jsonCfg.Log.File,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
