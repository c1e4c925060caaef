// Command loadgen posts synthetic submissions against a running
// instance, applying a proportional variation to each numeric attribute
// so the history drifts instead of repeating.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"net/http"
	"os"
	"strconv"
	"time"
)

type submission struct {
	JobName           string            `json:"job_name"`
	JobFilename       string            `json:"job_filename"`
	Attributes        map[string]string `json:"attributes"`
	HistoryExecutions int               `json:"monai_history_executions"`
}

// numericKeys are the attributes subject to variation; everything else
// passes through untouched.
var numericKeys = map[string]bool{
	"quantidade_linhas": true,
	"tamanho_arquivo":   true,
	"min":               true,
	"avg":               true,
	"max":               true,
	"stddev":            true,
}

func vary(base map[string]string, factor float64, trend string, rng *rand.Rand) map[string]string {
	out := make(map[string]string, len(base))
	for k, v := range base {
		if !numericKeys[k] {
			out[k] = v
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			out[k] = v
			continue
		}
		var scale float64
		switch trend {
		case "up":
			scale = 1 + rng.Float64()*factor
		case "down":
			scale = 1 - rng.Float64()*factor
		default:
			scale = 1 + (rng.Float64()*2-1)*factor
		}
		varied := int(float64(n) * scale)
		if k == "max" && varied > 999 {
			varied = 999
		}
		if varied < 0 {
			varied = 0
		}
		out[k] = strconv.Itoa(varied)
	}
	return out
}

func main() {
	endpoint := flag.String("endpoint", "http://localhost:8009/jobs/", "evaluation endpoint")
	jobName := flag.String("job", "Envio Diário Base Full - Banco Joelma", "job name")
	filename := flag.String("filename", "BASEDIARIA.csv", "job filename")
	repeat := flag.Int("repeat", 30, "number of submissions")
	delay := flag.Duration("delay", time.Second, "pause between submissions")
	factor := flag.Float64("variation", 0.1, "proportional variation factor")
	trend := flag.String("trend", "", `variation trend: "up", "down" or empty for random`)
	history := flag.Int("history", 20, "monai_history_executions value")
	seed := flag.Int64("seed", time.Now().UnixNano(), "rng seed")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	rng := rand.New(rand.NewSource(*seed))

	base := map[string]string{
		"quantidade_linhas": "70000",
		"tamanho_arquivo":   "700",
		"min":               "100",
		"avg":               "350",
		"max":               "499",
		"stddev":            "200",
	}
	client := &http.Client{Timeout: 5 * time.Minute}

	for i := 1; i <= *repeat; i++ {
		payload := submission{
			JobName:           *jobName,
			JobFilename:       *filename,
			Attributes:        vary(base, *factor, *trend, rng),
			HistoryExecutions: *history,
		}
		body, err := json.Marshal(payload)
		if err != nil {
			logger.Error("marshal payload", "error", err)
			os.Exit(1)
		}

		resp, err := client.Post(*endpoint, "application/json", bytes.NewReader(body))
		if err != nil {
			logger.Error("request failed", "n", i, "error", err)
		} else {
			text, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
			resp.Body.Close()
			logger.Info("response",
				"n", fmt.Sprintf("%d/%d", i, *repeat),
				"status", resp.StatusCode,
				"body", string(text),
			)
		}
		if i < *repeat {
			time.Sleep(*delay)
		}
	}
}
