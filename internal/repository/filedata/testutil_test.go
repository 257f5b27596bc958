package filedata

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/smartcity-dashboard/internal/config"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const trafficFixture = `timestamp,intersection_id,lat,lon,congestion,flow_vpm,avg_speed_kmh,incidents
2024-01-01 10:00:00,I1,28.6,77.2,35,120,40,0
2024-01-01 10:00:00,I2,28.61,77.21,55,90,22,1
2024-01-01 10:05:00,I3,28.62,77.22,45,80,30,0
`

// setupTestStore создает временный DATA_DIR с указанными файлами
func setupTestStore(t *testing.T, files map[string]string) *Store {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}

	store, err := New(&config.DataConfig{Dir: dir}, zap.NewNop())
	require.NoError(t, err)
	return store
}
