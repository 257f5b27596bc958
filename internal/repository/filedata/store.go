package filedata

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"github.com/smartcity-dashboard/internal/config"
	"github.com/smartcity-dashboard/internal/domain"
	"go.uber.org/zap"
)

// Пути датасетов относительно DATA_DIR
const (
	AirQualityFile    = "aqi_delhi.csv"
	WaterQualityFile  = "water_delhi.csv"
	TrafficFile       = "traffic/traffic_flow.csv"
	IndiaAQIDir       = "aqi_india"
	StationCoordsFile = "station_coordinates.json"
	ChennaiReservoirs = "chennai/chennai_reservoir_levels.csv"
)

// Store - доступ к каталогу с плоскими файлами датасетов
type Store struct {
	dir    string
	logger *zap.Logger
}

// New создает Store; каталог может еще не существовать, файлы проверяются при чтении
func New(cfg *config.DataConfig, logger *zap.Logger) (*Store, error) {
	dir, err := filepath.Abs(cfg.Dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve data dir: %w", err)
	}

	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		logger.Warn("Data directory is not available, datasets will degrade to defaults",
			zap.String("dir", dir))
	} else {
		logger.Info("Data directory resolved", zap.String("dir", dir))
	}

	return &Store{dir: dir, logger: logger}, nil
}

// Path возвращает абсолютный путь файла датасета
func (s *Store) Path(name string) string {
	return filepath.Join(s.dir, filepath.FromSlash(name))
}

// Health проверяет доступность каталога
func (s *Store) Health(ctx context.Context) error {
	info, err := os.Stat(s.dir)
	if err != nil {
		return fmt.Errorf("data dir unavailable: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("data dir %s is not a directory", s.dir)
	}
	return nil
}

func (s *Store) open(name string) (*os.File, error) {
	f, err := os.Open(s.Path(name))
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", name, domain.ErrDatasetNotFound)
		}
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	return f, nil
}

// readCSV декодирует CSV в слайс структур по csv-тегам
func readCSV[T any](s *Store, name string) ([]T, error) {
	f, err := s.open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var rows []T
	if err := gocsv.Unmarshal(f, &rows); err != nil {
		if stderrors.Is(err, gocsv.ErrEmptyCSVFile) {
			return []T{}, nil
		}
		s.logger.Error("Failed to decode CSV", zap.String("file", name), zap.Error(err))
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}

	return rows, nil
}

// readCSVMaps читает CSV с заранее неизвестным набором колонок
func readCSVMaps(r io.Reader) ([]map[string]string, error) {
	rows, err := gocsv.CSVToMaps(r)
	if err != nil {
		return nil, err
	}
	return rows, nil
}
