// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package config

import (
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"
)

const EnvPrefix = "VBR"

func loadFromEnv() (RawConfig, error) {
	structure := loadENVToMapStructure()
	rawConfig := RawConfig{}

	prefixed, ok := structure[EnvPrefix].(map[string]interface{})
	if !ok {
		return rawConfig, nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &rawConfig,
	})
	if err != nil {
		return rawConfig, err
	}
	err = decoder.Decode(prefixed)
	return rawConfig, err
}

func loadENVToMapStructure() map[string]interface{} {
	structure := map[string]interface{}{}
	for _, e := range os.Environ() {
		if strings.HasPrefix(e, EnvPrefix+"_") {
			pair := strings.SplitN(e, "=", 2)
			indexes := strings.Split(pair[0], "_")
			mountMap(structure, indexes, pair[1])
		}
	}
	return structure
}

func mountMap(m map[string]interface{}, i []string, v interface{}) {
	if len(i) > 1 {
		if _, ok := m[i[0]]; !ok {
			m[i[0]] = map[string]interface{}{}
		}
		asMap, ok := m[i[0]].(map[string]interface{})
		if !ok {
			return
		}
		mountMap(asMap, i[1:], v)
		v = asMap
	}
	m[i[0]] = v
}
