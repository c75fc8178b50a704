package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"sort"
	"sync"
	"time"
)

// Scenario is one kind of wallet request fired by the workers
type Scenario struct {
	Name   string
	Path   string
	Body   map[string]string
	Amount int64
	Credit bool
}

// TestResult contains metrics for a single request
type TestResult struct {
	Scenario     *Scenario
	Success      bool
	ResponseTime time.Duration
	StatusCode   int
	Error        error
}

// TestStats contains aggregated test statistics
type TestStats struct {
	TotalRequests      int
	SuccessfulRequests int
	FailedRequests     int
	TotalTime          time.Duration
	ResponseTimes      []time.Duration
	ErrorCounts        map[string]int
	ScenarioStats      map[string]int
	Credited           int64
	Debited            int64
}

type balanceResponse struct {
	Amount  int64  `json:"amount"`
	Display string `json:"display"`
}

func main() {
	concurrency := flag.Int("c", 5, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 100, "Total number of requests to make")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL of the wallet API")
	delayMs := flag.Int("delay", 50, "Delay between requests in milliseconds")
	flag.Parse()

	scenarios := []Scenario{
		{"Pay Small", "/wallet/pay", counterparty("Asha", "asha@okaxis", "15"), 15, false},
		{"Pay Large", "/wallet/pay", counterparty("Ravi", "ravi@ybl", "₹1,200"), 1200, false},
		{"Receive", "/wallet/receive", counterparty("Meera", "meera@paytm", "40"), 40, true},
		{"Top Up", "/wallet/topup", map[string]string{"amount": "500"}, 500, true},
		{"Withdraw", "/wallet/withdraw", map[string]string{"amount": "250"}, 250, false},
	}

	client := &http.Client{Timeout: 10 * time.Second}

	start, err := fetchBalance(client, *baseURL)
	if err != nil {
		fmt.Println("Failed to read the starting balance:", err)
		os.Exit(1)
	}

	fmt.Printf("Load testing %s with %d scenarios\n", *baseURL, len(scenarios))
	fmt.Printf("Concurrency: %d goroutines, total requests: %d, delay: %d ms\n", *concurrency, *totalRequests, *delayMs)
	fmt.Printf("Starting balance: %s\n", start.Display)

	stats := &TestStats{
		TotalRequests: *totalRequests,
		ErrorCounts:   make(map[string]int),
		ScenarioStats: make(map[string]int),
		ResponseTimes: make([]time.Duration, 0, *totalRequests),
	}

	jobs := make(chan struct{}, *totalRequests)
	for i := 0; i < *totalRequests; i++ {
		jobs <- struct{}{}
	}
	close(jobs)

	results := make(chan TestResult, *totalRequests)
	var wg sync.WaitGroup
	began := time.Now()
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker(client, *baseURL, *delayMs, scenarios, jobs, results)
		}()
	}
	wg.Wait()
	close(results)
	stats.TotalTime = time.Since(began)

	for result := range results {
		stats.ScenarioStats[result.Scenario.Name]++
		stats.ResponseTimes = append(stats.ResponseTimes, result.ResponseTime)
		if !result.Success {
			stats.FailedRequests++
			stats.ErrorCounts[result.Error.Error()]++
			continue
		}
		stats.SuccessfulRequests++
		if result.Scenario.Credit {
			stats.Credited += result.Scenario.Amount
		} else {
			stats.Debited += result.Scenario.Amount
		}
	}

	end, err := fetchBalance(client, *baseURL)
	if err != nil {
		fmt.Println("Failed to read the final balance:", err)
		os.Exit(1)
	}

	printResults(stats)

	expected := start.Amount + stats.Credited - stats.Debited
	fmt.Println("\n================= CONSERVATION =================")
	fmt.Printf("Expected balance: %d, actual: %s\n", expected, end.Display)
	if end.Amount != expected {
		fmt.Println("❌ balance does not match the successful requests")
		os.Exit(1)
	}
	fmt.Println("✅ balance matches the successful requests")
}

func counterparty(name, address, amount string) map[string]string {
	return map[string]string{"name": name, "address": address, "amount": amount}
}

func worker(client *http.Client, baseURL string, delayMs int, scenarios []Scenario,
	jobs <-chan struct{}, results chan<- TestResult) {
	for range jobs {
		if delayMs > 0 {
			time.Sleep(time.Duration(delayMs) * time.Millisecond)
		}

		scenario := &scenarios[rand.Intn(len(scenarios))]
		result := TestResult{Scenario: scenario}

		payload, err := json.Marshal(scenario.Body)
		if err != nil {
			result.Error = err
			results <- result
			continue
		}

		startTime := time.Now()
		resp, err := client.Post(baseURL+scenario.Path, "application/json", bytes.NewReader(payload))
		result.ResponseTime = time.Since(startTime)

		if err != nil {
			result.Error = err
		} else {
			result.StatusCode = resp.StatusCode
			result.Success = resp.StatusCode == http.StatusCreated
			if !result.Success {
				result.Error = fmt.Errorf("HTTP status code %d", resp.StatusCode)
			}
			_ = resp.Body.Close()
		}
		results <- result
	}
}

func fetchBalance(client *http.Client, baseURL string) (*balanceResponse, error) {
	resp, err := client.Get(baseURL + "/wallet/balance")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP status code %d", resp.StatusCode)
	}
	var balance balanceResponse
	if err := json.NewDecoder(resp.Body).Decode(&balance); err != nil {
		return nil, err
	}
	return &balance, nil
}

func percentile(sorted []time.Duration, p int) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	return sorted[len(sorted)*p/100]
}

func printResults(stats *TestStats) {
	sorted := append([]time.Duration(nil), stats.ResponseTimes...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	var total time.Duration
	for _, d := range sorted {
		total += d
	}
	var avg time.Duration
	if len(sorted) > 0 {
		avg = total / time.Duration(len(sorted))
	}

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Requests:      %d\n", stats.TotalRequests)
	fmt.Printf("Successful Requests: %d\n", stats.SuccessfulRequests)
	fmt.Printf("Failed Requests:     %d\n", stats.FailedRequests)
	fmt.Printf("Total Test Time:     %.2f seconds\n", stats.TotalTime.Seconds())
	fmt.Printf("Throughput:          %.2f req/s\n", float64(stats.TotalRequests)/stats.TotalTime.Seconds())

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average Response:    %v\n", avg)
	fmt.Printf("P50 Response:        %v\n", percentile(sorted, 50))
	fmt.Printf("P90 Response:        %v\n", percentile(sorted, 90))
	fmt.Printf("P99 Response:        %v\n", percentile(sorted, 99))

	fmt.Println("\n----------------- SCENARIO DISTRIBUTION -----------------")
	for name, count := range stats.ScenarioStats {
		fmt.Printf("%-15s: %d requests\n", name, count)
	}

	// Insufficient funds rejections are expected once the balance drains
	if stats.FailedRequests > 0 {
		fmt.Println("\n----------------- ERROR DISTRIBUTION -----------------")
		for msg, count := range stats.ErrorCounts {
			fmt.Printf("%-40s: %d\n", msg, count)
		}
	}
}
