// loader.go
package main

import (
	"fmt"
	"io"
	"log"
	"net/http"
	neturl "net/url"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
	uuid "github.com/satori/go.uuid"

	"github.com/pivolan/covid_tracker/domain/models"
)

// the four source columns the pipeline consumes, everything else is dropped
var sourceColumns = []string{"Date_reported", "Country", "New_cases", "Cumulative_cases"}

// FetchGlobalData downloads the WHO global case CSV and projects it onto the
// four required columns. Any failure on that path, from the network to a
// missing column, is recovered by substituting the built-in sample dataset,
// so the caller always gets a usable table back.
func FetchGlobalData(url string) []models.RawRecord {
	records, err := downloadAndParse(url)
	if err != nil {
		log.Printf("Could not fetch WHO data (%v), using fallback sample", err)
		records = fallbackSampleData()
	}
	log.Printf("Loaded %d total records", len(records))
	fmt.Println(GenerateRawTable(records, 5))
	return records
}

func downloadAndParse(url string) ([]models.RawRecord, error) {
	resp, err := http.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}

	// Save to disk first: the endpoint may serve an archived payload, and
	// unpacking goes through the filesystem.
	dir := filepath.Join(os.TempDir(), "covid_tracker", uuid.NewV4().String())
	if err = os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	defer os.RemoveAll(dir)

	filePath := filepath.Join(dir, payloadFileName(url))
	outFile, err := os.Create(filePath)
	if err != nil {
		return nil, err
	}
	_, err = io.Copy(outFile, resp.Body)
	outFile.Close()
	if err != nil {
		return nil, err
	}

	unpackedPath, err := unpackPayload(filePath)
	if err != nil {
		return nil, err
	}
	if unpackedPath != "" {
		filePath = unpackedPath
	}

	return parseSourceCSV(filePath)
}

func payloadFileName(url string) string {
	u, err := neturl.Parse(url)
	if err != nil {
		return "data.csv"
	}
	name := path.Base(u.Path)
	if name == "." || name == "/" || name == "" {
		return "data.csv"
	}
	return name
}

func parseSourceCSV(filePath string) ([]models.RawRecord, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	df := dataframe.ReadCSV(f,
		dataframe.HasHeader(true),
		dataframe.WithLazyQuotes(true),
		dataframe.DetectTypes(false),
	)
	if df.Error() != nil {
		return nil, df.Error()
	}
	for _, column := range sourceColumns {
		if !containsString(df.Names(), column) {
			return nil, fmt.Errorf("source is missing required column %q", column)
		}
	}
	df = df.Select(sourceColumns)
	if df.Error() != nil {
		return nil, df.Error()
	}

	rows := df.Records()[1:] // skip header
	records := make([]models.RawRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, models.RawRecord{
			DateReported:    strings.TrimSpace(row[0]),
			Country:         strings.TrimSpace(row[1]),
			NewCases:        parseCount(row[2]),
			CumulativeCases: parseCount(row[3]),
		})
	}
	return records, nil
}

// parseCount reads a case count cell, treating missing or malformed cells as
// zero. The WHO export leaves cells empty for days without reports.
func parseCount(value string) int {
	value = strings.TrimSpace(value)
	if n, err := strconv.Atoi(value); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(value, 64); err == nil {
		return int(f)
	}
	return 0
}

func containsString(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}

// fallbackSampleData is a hand-authored 7-day, two-country dataset used when
// the real source cannot be retrieved, so a run always has valid input.
func fallbackSampleData() []models.RawRecord {
	sample := []struct {
		country    string
		newCases   []int
		cumulative []int
	}{
		{"CountryA", []int{1, 2, 3, 4, 5, 6, 7}, []int{1, 3, 6, 10, 15, 21, 28}},
		{"CountryB", []int{2, 3, 1, 0, 4, 5, 3}, []int{2, 5, 6, 6, 10, 15, 18}},
	}

	records := make([]models.RawRecord, 0, 14)
	for _, s := range sample {
		for day := 0; day < 7; day++ {
			records = append(records, models.RawRecord{
				DateReported:    fmt.Sprintf("2020-01-%02d", day+1),
				Country:         s.country,
				NewCases:        s.newCases[day],
				CumulativeCases: s.cumulative[day],
			})
		}
	}
	return records
}
