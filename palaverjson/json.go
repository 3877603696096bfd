// Package palaverjson selects the fastest JSON codec available for the
// platform: sonic where its assembly backend is supported, jsoniter
// everywhere else.
package palaverjson

import (
	"runtime"

	"github.com/bytedance/sonic"
	jsoniter "github.com/json-iterator/go"
)

const UseSonic = runtime.GOARCH == "amd64" && runtime.GOOS == "linux"

func Marshal(v any) ([]byte, error) {
	if UseSonic {
		return sonic.Marshal(v)
	}

	return jsoniter.Marshal(v)
}

func Unmarshal(data []byte, v any) error {
	if UseSonic {
		return sonic.Unmarshal(data, v)
	}

	return jsoniter.Unmarshal(data, v)
}
