package main

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"
	"github.com/mozillazg/go-unidecode"
	uuid "github.com/satori/go.uuid"

	"github.com/pivolan/covid_tracker/config"
	"github.com/pivolan/covid_tracker/domain/models"
	"github.com/pivolan/covid_tracker/plot"
)

func main() {
	cfg := config.GetConfig()

	raw := FetchGlobalData(cfg.SourceURL)
	series := CleanGlobalData(raw)
	fmt.Println(GenerateSeriesTable(series, 5))

	daily, err := ComputeGlobalRolling(series, cfg.Window)
	if err != nil {
		log.Fatalln("global rolling:", err)
	}
	fmt.Println(GenerateGlobalDailyTable(daily, 10))

	metric := models.Metric(cfg.Metric)
	rows, err := ComputeCountriesRolling(series, cfg.Countries, metric, cfg.Window)
	if err != nil {
		log.Fatalln("countries rolling:", err)
	}
	log.Printf("Plotting rolling average for: %s", strings.Join(cfg.Countries, ", "))

	if err = os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		log.Fatalln("cannot create output dir:", err)
	}
	runID := uuid.NewV4().String()

	globalName := "global_rolling"
	globalPNG, err := writeChart(cfg.OutputDir, runID, globalName, buildGlobalChart(daily, cfg.Window))
	if err != nil {
		log.Printf("Error writing global chart: %v", err)
	}

	countriesName := "countries_" + slugify(strings.Join(cfg.Countries, "-"))
	countriesPNG, err := writeChart(cfg.OutputDir, runID, countriesName, buildCountriesChart(rows, metric, cfg.Window))
	if err != nil {
		log.Printf("Error writing countries chart: %v", err)
	}

	if cfg.TgToken == "" || cfg.TgChatID == 0 {
		return
	}
	api, err := tgbotapi.NewBotAPI(cfg.TgToken)
	if err != nil {
		log.Printf("Error connecting to telegram: %v", err)
		return
	}
	if globalPNG != nil {
		sendChartToTelegram(api, cfg.TgChatID, globalName,
			globalPNG, fmt.Sprintf("Глобальный тренд: скользящее среднее новых случаев за %d дней", cfg.Window))
	}
	if countriesPNG != nil {
		sendChartToTelegram(api, cfg.TgChatID, countriesName,
			countriesPNG, fmt.Sprintf("Сравнение стран: %s", strings.Join(cfg.Countries, ", ")))
	}
}

// writeChart renders one chart through both backends, PNG for messengers and
// HTML for interactive viewing, and returns the PNG bytes.
func writeChart(dir, runID, name string, c plot.Chart) ([]byte, error) {
	buf := bytes.NewBuffer([]byte{})
	if err := (plot.PNGRenderer{}).Render(c, buf); err != nil {
		return nil, err
	}
	pngPath := filepath.Join(dir, fmt.Sprintf("%s_%s.png", name, runID))
	if err := os.WriteFile(pngPath, buf.Bytes(), 0644); err != nil {
		return nil, err
	}

	htmlPath := filepath.Join(dir, fmt.Sprintf("%s_%s.html", name, runID))
	htmlFile, err := os.Create(htmlPath)
	if err != nil {
		return nil, err
	}
	defer htmlFile.Close()
	if err = (plot.HTMLRenderer{}).Render(c, htmlFile); err != nil {
		return nil, err
	}

	log.Printf("Wrote %s and %s", pngPath, htmlPath)
	return buf.Bytes(), nil
}

func buildGlobalChart(daily []models.GlobalDailyRow, window int) plot.Chart {
	s := plot.Series{Name: fmt.Sprintf("New Cases (%d-day avg)", window)}
	for _, row := range daily {
		s.Dates = append(s.Dates, row.Date)
		s.Values = append(s.Values, row.RollingMean)
	}
	return plot.Chart{
		Title:  fmt.Sprintf("Global COVID-19: %d-Day Rolling Average of New Cases", window),
		YLabel: fmt.Sprintf("New Cases (%d-day avg)", window),
		Series: []plot.Series{s},
	}
}

func buildCountriesChart(rows []models.CountryRollingRow, metric models.Metric, window int) plot.Chart {
	grouped := map[string]*plot.Series{}
	var series []*plot.Series
	for _, row := range rows {
		s, ok := grouped[row.Country]
		if !ok {
			s = &plot.Series{Name: row.Country}
			grouped[row.Country] = s
			series = append(series, s)
		}
		s.Dates = append(s.Dates, row.Date)
		s.Values = append(s.Values, row.RollingMean)
	}

	c := plot.Chart{
		Title:  fmt.Sprintf("%d-Day Rolling Average of %s by Country", window, metricTitle(metric)),
		YLabel: fmt.Sprintf("%s (%d-day avg)", metricTitle(metric), window),
	}
	for _, s := range series {
		c.Series = append(c.Series, *s)
	}
	return c
}

func metricTitle(metric models.Metric) string {
	words := strings.Split(string(metric), "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// slugify turns country names, non-ASCII included, into safe file names.
func slugify(s string) string {
	s = strings.ToLower(unidecode.Unidecode(s))
	s = nonAlnum.ReplaceAllString(s, "_")
	return strings.Trim(s, "_")
}
