package studyfind

import (
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestNew_RequiresAddress(t *testing.T) {
	if _, err := New(); err == nil {
		t.Fatal("expected error without a database address")
	}
}

func TestOptions_Populate(t *testing.T) {
	cfg := &clientConfig{}
	logger := zap.NewNop()

	for _, o := range []Option{
		WithRedis("host1:6379", "host2:6379"),
		WithPassword("pw"),
		WithLogger(logger),
		WithSubjectCacheTTL(5 * time.Minute),
		WithCommentConcurrency(4),
	} {
		o(cfg)
	}

	if len(cfg.addrs) != 2 || cfg.addrs[0] != "host1:6379" {
		t.Errorf("addrs = %v", cfg.addrs)
	}
	if cfg.password != "pw" {
		t.Errorf("password = %q", cfg.password)
	}
	if cfg.logger != logger {
		t.Error("logger not set")
	}
	if cfg.subjectCacheTTL != 5*time.Minute {
		t.Errorf("ttl = %v", cfg.subjectCacheTTL)
	}
	if cfg.commentConcurrency != 4 {
		t.Errorf("comment concurrency = %d", cfg.commentConcurrency)
	}
}
