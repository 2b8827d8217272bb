// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the JSON config file.
type StructuredJSONConfig struct {
	App struct {
		KeyPepper         string   `json:"key_pepper"`
		TokenSignKey      string   `json:"token_sign_key"`
		TokenIssuer       string   `json:"token_issuer"`
		TokenDuration     Duration `json:"token_duration"`
		KeyTTL            Duration `json:"key_ttl"`
		AdminUsername     string   `json:"admin_username"`
		AdminPasswordHash string   `json:"admin_password_hash"`
		Version           string   `json:"version"`
		LogLevel          string   `json:"log_level"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN          string `json:"dsn"`
			MaxOpenConns int    `json:"max_open_conns"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		GRPCAddress     string   `json:"grpc_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		AIValidatorURL string   `json:"ai_validator_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Workers struct {
		SweepInterval Duration `json:"sweep_interval"`
		FinalizeBatch int      `json:"finalize_batch"`
	} `json:"workers,omitempty"`

	Policy struct {
		BaseWeight                  float64  `json:"base_weight"`
		EarlyLockMinVotes           int64    `json:"early_lock_min_votes"`
		EarlyLockMinWithinAreaRatio float64  `json:"early_lock_min_within_area_ratio"`
		EarlyLockDecisiveShare      float64  `json:"early_lock_decisive_share"`
		TieBreak                    string   `json:"tie_break"`
		CorrectVoteReward           float64  `json:"correct_vote_reward"`
		IncorrectVotePenalty        float64  `json:"incorrect_vote_penalty"`
		WeightFactor                float64  `json:"weight_factor"`
		PosterFactReward            float64  `json:"poster_fact_reward"`
		PosterLiePenalty            float64  `json:"poster_lie_penalty"`
		BlockThreshold              float64  `json:"block_threshold"`
		MaxVotingDuration           Duration `json:"max_voting_duration"`
	} `json:"policy,omitempty"`
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

	p := jsonCfg.Policy
	cfg := &StructuredConfig{
		App: App{
			KeyPepper:         jsonCfg.App.KeyPepper,
			TokenSignKey:      jsonCfg.App.TokenSignKey,
			TokenIssuer:       jsonCfg.App.TokenIssuer,
			TokenDuration:     time.Duration(jsonCfg.App.TokenDuration),
			KeyTTL:            time.Duration(jsonCfg.App.KeyTTL),
			AdminUsername:     jsonCfg.App.AdminUsername,
			AdminPasswordHash: jsonCfg.App.AdminPasswordHash,
			Version:           jsonCfg.App.Version,
			LogLevel:          jsonCfg.App.LogLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN:          jsonCfg.Storage.DB.DSN,
				MaxOpenConns: jsonCfg.Storage.DB.MaxOpenConns,
			},
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			GRPCAddress:     jsonCfg.Server.GRPCAddress,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
		},
		Adapter: Adapter{
			AIValidatorURL: jsonCfg.Adapter.AIValidatorURL,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Workers: Workers{
			SweepInterval: time.Duration(jsonCfg.Workers.SweepInterval),
			FinalizeBatch: jsonCfg.Workers.FinalizeBatch,
		},
		Policy: Policy{
			BaseWeight:                  p.BaseWeight,
			EarlyLockMinVotes:           p.EarlyLockMinVotes,
			EarlyLockMinWithinAreaRatio: p.EarlyLockMinWithinAreaRatio,
			EarlyLockDecisiveShare:      p.EarlyLockDecisiveShare,
			TieBreak:                    p.TieBreak,
			CorrectVoteReward:           p.CorrectVoteReward,
			IncorrectVotePenalty:        p.IncorrectVotePenalty,
			WeightFactor:                p.WeightFactor,
			PosterFactReward:            p.PosterFactReward,
			PosterLiePenalty:            p.PosterLiePenalty,
			BlockThreshold:              p.BlockThreshold,
			MaxVotingDuration:           time.Duration(p.MaxVotingDuration),
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
