package app_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/stockroom/config"
	"github.com/shashiranjanraj/stockroom/pkg/app"
	"github.com/shashiranjanraj/stockroom/pkg/logger"
	"github.com/shashiranjanraj/stockroom/pkg/storage"
)

func TestBootWithSeed(t *testing.T) {
	rt, err := app.New().
		Capacity(3).
		Seed(true).
		RuntimeMetrics(false).
		Storage(storage.NewManager("none")).
		Logger(logger.Discard()).
		Boot(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, rt.Inventory.Len())
	assert.True(t, rt.Inventory.Full())
	assert.Equal(t, 3.0, testutil.ToFloat64(rt.Metrics.Products))
}

func TestBootReadsConfig(t *testing.T) {
	dir := t.TempDir()
	env := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(env, []byte("MAX_PRODUCTS=4\nMETRICS_EXPORT=metrics/run.prom\nSTORAGE_LOCAL_ROOT="+dir+"\n"), 0o644))
	require.NoError(t, config.LoadFrom(filepath.Join(dir, "app.json"), env))

	rt, err := app.New().Logger(logger.Discard()).Boot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, rt.Inventory.Capacity())
	assert.Equal(t, "metrics/run.prom", rt.MetricsPath)
	require.NotNil(t, rt.Disks)

	var out bytes.Buffer
	ctx := logger.InjectLogger(context.Background(), logger.Discard())
	require.NoError(t, rt.Console(strings.NewReader("0\n0\n"), &out).Run(ctx))
	assert.FileExists(t, filepath.Join(dir, "metrics", "run.prom"))
}
