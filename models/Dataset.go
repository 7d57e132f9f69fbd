package models

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/delta/pon-sentimen-dashboard/utils"
)

var (
	ErrDatasetNotLoaded = errors.New("Data belum dimuat!")
	ErrMissingColumn    = errors.New("CSV is missing a required column")
)

// Dataset is an immutable snapshot of every labelled post.
// It is loaded once and shared by all requests.
type Dataset struct {
	Tweets   []Tweet `json:"-"`
	Source   string  `json:"source"`
	LoadedAt string  `json:"loaded_at"`
}

var currentDataset = struct {
	sync.RWMutex
	d *Dataset
}{}

// requiredColumns must be present in the CSV header. The remaining
// columns default to empty strings.
var requiredColumns = []string{"username", "full_text", "Sentimen"}

// GetDataset returns the loaded snapshot
func GetDataset() (*Dataset, error) {
	currentDataset.RLock()
	defer currentDataset.RUnlock()

	if currentDataset.d == nil {
		return nil, ErrDatasetNotLoaded
	}
	return currentDataset.d, nil
}

// SetDataset replaces the shared snapshot
func SetDataset(tweets []Tweet, source string) *Dataset {
	d := &Dataset{
		Tweets:   tweets,
		Source:   source,
		LoadedAt: utils.GetCurrentTimeISO8601(),
	}

	currentDataset.Lock()
	currentDataset.d = d
	currentDataset.Unlock()

	return d
}

// SentimenOptions returns "All" followed by the distinct labels, sorted
func (d *Dataset) SentimenOptions() []Sentimen {
	seen := make(map[Sentimen]struct{})
	for _, t := range d.Tweets {
		seen[t.Sentimen] = struct{}{}
	}

	labels := make([]Sentimen, 0, len(seen))
	for s := range seen {
		labels = append(labels, s)
	}
	sort.Slice(labels, func(i, j int) bool { return labels[i] < labels[j] })

	return append([]Sentimen{All}, labels...)
}

// LoadDataset loads every post from the database into memory.
// When the table is empty and a DatasetFile is configured, the CSV is read instead.
func LoadDataset() (*Dataset, error) {
	l := logger.WithFields(logrus.Fields{
		"method": "LoadDataset",
	})

	l.Infof("Attempting to load dataset")

	db, err := getDB()
	if err != nil {
		l.Errorf("Failed opening database: %+v", err)
		return nil, err
	}

	var tweets []Tweet
	if err := db.Order("id asc").Find(&tweets).Error; err != nil {
		l.Errorf("Failed reading Tweets: %+v", err)
		return nil, err
	}

	if len(tweets) > 0 {
		l.Infof("Loaded %d posts from database", len(tweets))
		return SetDataset(tweets, "database"), nil
	}

	if config.DatasetFile == "" {
		l.Warnf("Tweets table is empty and no DatasetFile configured")
		return SetDataset(nil, "empty"), nil
	}

	tweets, err = ReadCSVFile(config.DatasetFile)
	if err != nil {
		l.Errorf("Failed reading %s: %+v", config.DatasetFile, err)
		return nil, err
	}

	l.Infof("Loaded %d posts from %s", len(tweets), config.DatasetFile)
	return SetDataset(tweets, config.DatasetFile), nil
}

// ReadCSVFile reads a labelled dataset CSV from disk
func ReadCSVFile(fileName string) ([]Tweet, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadCSV(f)
}

// ReadCSV parses a labelled dataset. Columns are matched by header name.
// Rows with an unknown sentiment label are skipped.
func ReadCSV(r io.Reader) ([]Tweet, error) {
	l := logger.WithFields(logrus.Fields{
		"method": "ReadCSV",
	})

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))] = i
	}
	for _, c := range requiredColumns {
		if _, ok := cols[c]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, c)
		}
	}

	field := func(rec []string, name string) string {
		i, ok := cols[name]
		if !ok || i >= len(rec) {
			return ""
		}
		return rec[i]
	}

	now := utils.GetCurrentTimeISO8601()

	var tweets []Tweet
	line := 1
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		sentimen := Sentimen(strings.TrimSpace(field(rec, "Sentimen")))
		if !sentimen.IsLabel() {
			l.Warnf("Skipping line %d with sentiment %q", line, sentimen)
			continue
		}

		tweets = append(tweets, Tweet{
			Username:     field(rec, "username"),
			FullText:     field(rec, "full_text"),
			Sentimen:     sentimen,
			SwremoveText: field(rec, "swremove_text"),
			Hashtag:      field(rec, "hashtag"),
			Mention:      field(rec, "mention"),
			CreatedAt:    now,
		})
	}

	return tweets, nil
}

// ImportCSV stores every post of fileName in the database in one transaction
// and returns the number of rows written.
func ImportCSV(fileName string) (int, error) {
	l := logger.WithFields(logrus.Fields{
		"method":         "ImportCSV",
		"param_fileName": fileName,
	})

	l.Infof("Attempting to import")

	tweets, err := ReadCSVFile(fileName)
	if err != nil {
		l.Errorf("Failed reading CSV: %+v", err)
		return 0, err
	}

	db, err := getDB()
	if err != nil {
		l.Errorf("Failed opening database: %+v", err)
		return 0, err
	}

	tx := db.Begin()
	if err := tx.Error; err != nil {
		l.Errorf("Failed starting transaction: %+v", err)
		return 0, err
	}

	for i := range tweets {
		if err := tx.Create(&tweets[i]).Error; err != nil {
			l.Errorf("Failed inserting post %d: %+v", i, err)
			tx.Rollback()
			return 0, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		l.Errorf("Failed committing import: %+v", err)
		return 0, err
	}

	l.Infof("Imported %d posts", len(tweets))
	return len(tweets), nil
}
