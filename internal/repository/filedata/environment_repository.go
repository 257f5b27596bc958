package filedata

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/smartcity-dashboard/internal/domain"
	"github.com/smartcity-dashboard/internal/domain/repository"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Фиксированные координаты водохранилищ Ченнаи
var reservoirCoords = []struct {
	Name string
	Lat  float64
	Lon  float64
}{
	{Name: "POONDI", Lat: 13.19, Lon: 79.86},
	{Name: "CHOLAVARAM", Lat: 13.23, Lon: 80.14},
	{Name: "REDHILLS", Lat: 13.16, Lon: 80.18},
	{Name: "CHEMBARAMBAKKAM", Lat: 13.01, Lon: 80.06},
}

type environmentRepository struct {
	store  *Store
	logger *zap.Logger
}

// NewEnvironmentRepository создает репозиторий датасетов окружающей среды
func NewEnvironmentRepository(store *Store, logger *zap.Logger) repository.EnvironmentRepository {
	return &environmentRepository{
		store:  store,
		logger: logger,
	}
}

func (r *environmentRepository) GetAirQualityStations(ctx context.Context) ([]domain.AirQualityStation, error) {
	return readCSV[domain.AirQualityStation](r.store, AirQualityFile)
}

func (r *environmentRepository) GetWaterQualityStations(ctx context.Context) ([]domain.WaterQualityStation, error) {
	return readCSV[domain.WaterQualityStation](r.store, WaterQualityFile)
}

// GetIndiaAQIReadings собирает последние значения по каждой станции из всех файлов городов.
// Станции без координат пропускаются, битый файл города логируется и пропускается.
func (r *environmentRepository) GetIndiaAQIReadings(ctx context.Context) ([]domain.IndiaAQIReading, error) {
	coords, err := r.loadStationCoordinates()
	if err != nil {
		return nil, err
	}
	if len(coords) == 0 {
		return []domain.IndiaAQIReading{}, nil
	}

	files, err := filepath.Glob(filepath.Join(r.store.Path(IndiaAQIDir), "*.csv"))
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", IndiaAQIDir, err)
	}
	sort.Strings(files)

	readings := make([]domain.IndiaAQIReading, 0)
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		cityReadings, err := r.readCityFile(file, coords)
		if err != nil {
			r.logger.Warn("Failed to process city AQI file",
				zap.String("file", filepath.Base(file)),
				zap.Error(err))
			continue
		}
		readings = append(readings, cityReadings...)
	}

	return readings, nil
}

// GetReservoirLevels берет последнюю строку таблицы уровней
func (r *environmentRepository) GetReservoirLevels(ctx context.Context) ([]domain.ReservoirLevel, error) {
	f, err := r.store.open(ChennaiReservoirs)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := readCSVMaps(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", ChennaiReservoirs, err)
	}
	if len(rows) == 0 {
		return []domain.ReservoirLevel{}, nil
	}

	latest := rows[len(rows)-1]
	levels := make([]domain.ReservoirLevel, 0, len(reservoirCoords))
	for _, rc := range reservoirCoords {
		raw, ok := latest[rc.Name]
		if !ok {
			continue
		}
		level, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, fmt.Errorf("reservoir %s level %q: %w", rc.Name, raw, err)
		}
		levels = append(levels, domain.ReservoirLevel{
			Name:      rc.Name,
			LevelMcft: level,
			Date:      latest["Date"],
			Lat:       rc.Lat,
			Lon:       rc.Lon,
		})
	}

	return levels, nil
}

// loadStationCoordinates читает station_coordinates.json; отсутствие файла - пустой словарь
func (r *environmentRepository) loadStationCoordinates() (map[string]*domain.GeoCoordinate, error) {
	data, err := os.ReadFile(r.store.Path(StationCoordsFile))
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			r.logger.Debug("Station coordinates file is missing")
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", StationCoordsFile, err)
	}

	var coords map[string]*domain.GeoCoordinate
	if err := json.Unmarshal(data, &coords); err != nil {
		return nil, fmt.Errorf("decode %s: %w", StationCoordsFile, err)
	}

	return coords, nil
}

func (r *environmentRepository) readCityFile(path string, coords map[string]*domain.GeoCoordinate) ([]domain.IndiaAQIReading, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := readCSVMaps(f)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	if _, ok := rows[0]["Location"]; !ok {
		return nil, nil
	}

	city := cityFromFileName(path)
	_, hasAQI := rows[0]["AQI"]
	_, hasPM25 := rows[0]["PM2.5"]

	readings := make([]domain.IndiaAQIReading, 0)
	for _, location := range sortedLocations(rows) {
		row := lastValues(rows, location)

		coord := coords[fmt.Sprintf("%s, %s, India", location, city)]
		if coord == nil {
			continue
		}

		reading := domain.IndiaAQIReading{
			City:      city,
			Location:  location,
			Timestamp: "N/A",
			PM25:      parseOptional(row["PM2.5"]),
			PM10:      parseOptional(row["PM10"]),
			NO2:       parseOptional(row["NO2"]),
			SO2:       parseOptional(row["SO2"]),
			CO:        parseOptional(row["CO"]),
			O3:        parseOptional(row["O3"]),
			Lat:       coord.Lat,
			Lon:       coord.Lng,
		}
		if ts, ok := row["Timestamp"]; ok {
			reading.Timestamp = ts
		}

		switch {
		case hasAQI:
			reading.AQI = parseOptional(row["AQI"])
		case hasPM25:
			reading.AQI = reading.PM25
		default:
			zero := 0.0
			reading.AQI = &zero
		}

		readings = append(readings, reading)
	}

	return readings, nil
}

// cityFromFileName: "new-delhi_2024.csv" -> "New-Delhi"
func cityFromFileName(path string) string {
	base := filepath.Base(path)
	name, _, _ := strings.Cut(base, "_")
	name = strings.TrimSuffix(name, filepath.Ext(name))
	return cases.Title(language.Und).String(name)
}

func sortedLocations(rows []map[string]string) []string {
	seen := make(map[string]struct{})
	locations := make([]string, 0)
	for _, row := range rows {
		loc := row["Location"]
		if loc == "" {
			continue
		}
		if _, ok := seen[loc]; !ok {
			seen[loc] = struct{}{}
			locations = append(locations, loc)
		}
	}
	sort.Strings(locations)
	return locations
}

// lastValues - последнее непустое значение каждой колонки среди строк станции
func lastValues(rows []map[string]string, location string) map[string]string {
	result := make(map[string]string)
	for _, row := range rows {
		if row["Location"] != location {
			continue
		}
		for col, val := range row {
			if strings.TrimSpace(val) != "" {
				result[col] = val
			}
		}
	}
	return result
}

func parseOptional(raw string) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) {
		return nil
	}
	return &v
}
