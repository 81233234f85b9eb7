package cmd

import "testing"

func TestConfigFlagFromArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"absent", []string{"tx", "deposit", "-n", "1"}, ""},
		{"long separate", []string{"--config", "/tmp/pb.yaml", "account", "list"}, "/tmp/pb.yaml"},
		{"long equals", []string{"account", "list", "--config=/tmp/pb.yaml"}, "/tmp/pb.yaml"},
		{"short separate", []string{"-c", "/tmp/pb.yaml"}, "/tmp/pb.yaml"},
		{"short equals", []string{"-c=/tmp/pb.yaml"}, "/tmp/pb.yaml"},
		{"dangling flag", []string{"account", "--config"}, ""},
		{"empty", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := configFlagFromArgs(tt.args); got != tt.want {
				t.Errorf("configFlagFromArgs(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}
