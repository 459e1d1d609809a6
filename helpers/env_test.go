package helpers

import (
	"testing"
	"time"
)

type getEnvFn interface{}

func TestGetEnv(t *testing.T) {
	type args struct {
		key      string
		fallback interface{}
	}
	type testKey struct {
		key   string
		value string
	}
	tests := []struct {
		name   string
		args   args
		setKey testKey
		want   interface{}
		testFn getEnvFn
	}{
		{name: "GetEnv fallback", args: args{"QUARRY_MISSING_VAR", "default"}, setKey: testKey{"", ""}, want: "default", testFn: GetEnv},
		{name: "GetEnv set", args: args{"QUARRY_SET_VAR", "default"}, setKey: testKey{"QUARRY_SET_VAR", "custom"}, want: "custom", testFn: GetEnv},
		{name: "GetEnvInt fallback", args: args{"QUARRY_MISSING_VAR", 30}, setKey: testKey{"", ""}, want: 30, testFn: GetEnvInt},
		{name: "GetEnvInt set", args: args{"QUARRY_SET_VAR", 30}, setKey: testKey{"QUARRY_SET_VAR", "1234"}, want: 1234, testFn: GetEnvInt},
		{name: "GetEnvInt unparseable", args: args{"QUARRY_SET_VAR", 30}, setKey: testKey{"QUARRY_SET_VAR", "not-a-number"}, want: 30, testFn: GetEnvInt},
		{name: "GetEnvBool fallback", args: args{"QUARRY_MISSING_VAR", true}, setKey: testKey{"", ""}, want: true, testFn: GetEnvBool},
		{name: "GetEnvBool set", args: args{"QUARRY_SET_VAR", true}, setKey: testKey{"QUARRY_SET_VAR", "false"}, want: false, testFn: GetEnvBool},
		{name: "GetEnvDuration fallback", args: args{"QUARRY_MISSING_VAR", 30 * time.Second}, setKey: testKey{"", ""}, want: 30 * time.Second, testFn: GetEnvDuration},
		{name: "GetEnvDuration set", args: args{"QUARRY_SET_VAR", 30 * time.Second}, setKey: testKey{"QUARRY_SET_VAR", "2m"}, want: 2 * time.Minute, testFn: GetEnvDuration},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setKey.key != "" {
				t.Setenv(tt.setKey.key, tt.setKey.value)
			}
			var got interface{}
			switch fn := tt.testFn.(type) {
			case func(string, string) string:
				got = fn(tt.args.key, tt.args.fallback.(string))
			case func(string, int) int:
				got = fn(tt.args.key, tt.args.fallback.(int))
			case func(string, bool) bool:
				got = fn(tt.args.key, tt.args.fallback.(bool))
			case func(string, time.Duration) time.Duration:
				got = fn(tt.args.key, tt.args.fallback.(time.Duration))
			}
			if got != tt.want {
				t.Errorf("%T() = %v, want %v", tt.testFn, got, tt.want)
			}
		})
	}
}
