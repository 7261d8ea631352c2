// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !zcio_minimal

package instrument

import "flag"

// Config configures metric names and logging.
type Config struct {
	Namespace string `yaml:"namespace"`
	Subsystem string `yaml:"subsystem"`

	// LogEndOfData also logs end-of-data failures, which are usually the
	// normal way a read loop stops.
	LogEndOfData bool `yaml:"log_end_of_data"`
}

// RegisterFlags registers flags with no prefix.
func (cfg *Config) RegisterFlags(f *flag.FlagSet) {
	cfg.RegisterFlagsWithPrefix("", f)
}

// RegisterFlagsWithPrefix registers flags, each name starting with prefix.
func (cfg *Config) RegisterFlagsWithPrefix(prefix string, f *flag.FlagSet) {
	f.StringVar(&cfg.Namespace, prefix+"zcio.metrics-namespace", "zcio", "Namespace of the zcio operation metrics.")
	f.StringVar(&cfg.Subsystem, prefix+"zcio.metrics-subsystem", "", "Subsystem of the zcio operation metrics.")
	f.BoolVar(&cfg.LogEndOfData, prefix+"zcio.log-end-of-data", false, "Log reads that fail because the source ran out of data.")
}
