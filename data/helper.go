package data

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/schollz/progressbar/v3"
)

// helper function to get the http request and store into struct from polygon.io
func getPolygon[DataType PairQuote | PairAggs](url string, target DataType) (result DataType, err error) {
	err = godotenv.Load()
	if err != nil {
		return target, err
	}
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return target, err
	}
	key := os.Getenv("POLYGON_API_KEY")
	req.Header.Add("Authorization", fmt.Sprintf(`Bearer %s`, key))

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return target, err
	}
	defer resp.Body.Close()

	err = json.NewDecoder(resp.Body).Decode(&target)
	if err != nil {
		return
	}
	result = target
	return result, nil
}

// progress bar initialization
func progressBar(length int) *progressbar.ProgressBar {
	bar := progressbar.NewOptions(
		length,
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionUseANSICodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(20),
		progressbar.OptionSetVisibility(true),
		progressbar.OptionShowDescriptionAtLineEnd(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))
	return bar
}
