package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/amirhossein-jamali/points-bot/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/points-bot/internal/domain/error"
	"github.com/amirhossein-jamali/points-bot/internal/domain/usecase/ledger"
	"github.com/amirhossein-jamali/points-bot/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/points-bot/internal/infrastructure/adapter/logger"
	timeProvider "github.com/amirhossein-jamali/points-bot/internal/infrastructure/adapter/time"
)

// scenario is one ledger operation the workers pick at random
type scenario struct {
	Name   string
	Credit bool
	Amount int64
}

var scenarios = []scenario{
	{"Add Small", true, 10},
	{"Add Medium", true, 20},
	{"Add Large", true, 30},
	{"Remove Small", false, 15},
	{"Remove Medium", false, 40},
	{"Remove Large", false, 60},
}

type result struct {
	UserID   int64
	Scenario scenario
	Latency  time.Duration
	Err      error
}

type stats struct {
	mu          sync.Mutex
	latencies   []time.Duration
	succeeded   int
	refused     int
	failed      int
	errorCounts map[string]int
	perScenario map[string]int
	expected    map[int64]int64
}

func main() {
	os.Exit(run())
}

func run() int {
	concurrency := flag.Int("c", 8, "Number of concurrent goroutines")
	totalOps := flag.Int("n", 500, "Total number of ledger operations")
	userIDsStr := flag.String("u", "1,2,3", "Comma-separated list of user IDs to distribute load across")
	dbPath := flag.String("db", "", "SQLite file to use (defaults to a temporary file)")
	flag.Parse()

	userIDs := parseUserIDs(*userIDsStr)

	path := *dbPath
	if path == "" {
		dir, err := os.MkdirTemp("", "points-stress-*")
		if err != nil {
			fmt.Fprintln(os.Stderr, "failed to create temp dir:", err)
			return 1
		}
		defer os.RemoveAll(dir)
		path = filepath.Join(dir, "stress.db")
	}

	appLogger := logger.NewDefaultLogger()
	tp := timeProvider.NewRealTimeProvider()
	ctx := context.Background()

	dbConfig := database.DefaultConfig().WithPath(path)
	dbConfig.LogLevel = "silent"
	manager := database.NewManager(dbConfig, appLogger, tp)
	if _, err := manager.Connect(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "failed to open store:", err)
		return 1
	}
	defer func() { _ = manager.Close() }()
	if err := manager.Migrate(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "failed to migrate store:", err)
		return 1
	}

	service := ledger.NewService(manager.CreateUnitOfWork(), logger.NewNoopLogger())

	fmt.Printf("Stressing ledger at %s across %d users: %v\n", path, len(userIDs), userIDs)
	fmt.Printf("Concurrency: %d goroutines, operations: %d\n", *concurrency, *totalOps)

	st := newStats()
	// An existing ledger starts from its current balances
	st.seed(service.ListAccounts(ctx))

	jobs := make(chan int, *totalOps)
	results := make(chan result, *totalOps)

	start := time.Now()
	var wg sync.WaitGroup
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker(ctx, service, userIDs, jobs, results)
		}()
	}

	for i := 0; i < *totalOps; i++ {
		jobs <- i
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()
	for r := range results {
		st.record(r)
	}
	elapsed := time.Since(start)

	printResults(st, elapsed)

	if !verify(ctx, service, st) {
		return 1
	}
	return 0
}

func worker(ctx context.Context, service *ledger.Service, userIDs []int64, jobs <-chan int, results chan<- result) {
	for range jobs {
		userID := userIDs[rand.Intn(len(userIDs))]
		sc := scenarios[rand.Intn(len(scenarios))]

		start := time.Now()
		var err error
		if sc.Credit {
			_, err = service.Credit(ctx, userID, sc.Amount)
		} else {
			_, err = service.DebitIfSufficient(ctx, userID, sc.Amount)
		}

		results <- result{UserID: userID, Scenario: sc, Latency: time.Since(start), Err: err}
	}
}

func newStats() *stats {
	return &stats{
		errorCounts: make(map[string]int),
		perScenario: make(map[string]int),
		expected:    make(map[int64]int64),
	}
}

func (s *stats) seed(accounts []*entity.Account) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, account := range accounts {
		s.expected[account.DiscordID] = account.Points()
	}
}

func (s *stats) record(r result) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.latencies = append(s.latencies, r.Latency)
	s.perScenario[r.Scenario.Name]++

	switch {
	case r.Err == nil:
		s.succeeded++
		if r.Scenario.Credit {
			s.expected[r.UserID] += r.Scenario.Amount
		} else {
			s.expected[r.UserID] -= r.Scenario.Amount
		}
	case errors.Is(r.Err, domainerr.ErrInsufficientBalance), errors.Is(r.Err, domainerr.ErrAccountNotFound):
		s.refused++
	default:
		s.failed++
		s.errorCounts[r.Err.Error()]++
	}
}

// verify checks that no balance went negative and that every balance
// equals the sum of its successful operations
func verify(ctx context.Context, service *ledger.Service, st *stats) bool {
	ok := true
	for _, account := range service.ListAccounts(ctx) {
		if account.IsOverdrawn() {
			fmt.Printf("FAIL: user %d is overdrawn (%d)\n", account.DiscordID, account.Points())
			ok = false
		}
		if want := st.expected[account.DiscordID]; account.Points() != want {
			fmt.Printf("FAIL: user %d has %d points, expected %d\n", account.DiscordID, account.Points(), want)
			ok = false
		}
	}
	if ok {
		fmt.Println("PASS: balances are consistent and never negative")
	}
	return ok
}

func printResults(st *stats, elapsed time.Duration) {
	total := len(st.latencies)
	if total == 0 {
		fmt.Println("No operations were run")
		return
	}

	sorted := slices.Clone(st.latencies)
	slices.Sort(sorted)

	var sum time.Duration
	for _, l := range sorted {
		sum += l
	}

	fmt.Println("\n================= RESULTS =================")
	fmt.Printf("Operations:          %d in %.2fs (%.1f ops/s)\n", total, elapsed.Seconds(), float64(total)/elapsed.Seconds())
	fmt.Printf("Succeeded:           %d\n", st.succeeded)
	fmt.Printf("Refused (balance):   %d\n", st.refused)
	fmt.Printf("Failed:              %d\n", st.failed)

	fmt.Println("\n----------------- LATENCY -----------------")
	fmt.Printf("Average:             %v\n", sum/time.Duration(total))
	fmt.Printf("P50:                 %v\n", sorted[total*50/100])
	fmt.Printf("P95:                 %v\n", sorted[total*95/100])
	fmt.Printf("P99:                 %v\n", sorted[total*99/100])
	fmt.Printf("Max:                 %v\n", sorted[total-1])

	fmt.Println("\n----------------- SCENARIOS -----------------")
	for _, sc := range scenarios {
		fmt.Printf("%-15s: %d\n", sc.Name, st.perScenario[sc.Name])
	}

	if st.failed > 0 {
		fmt.Println("\n----------------- ERRORS -----------------")
		for msg, count := range st.errorCounts {
			fmt.Printf("%-40s: %d\n", msg, count)
		}
	}
}

func parseUserIDs(raw string) []int64 {
	var ids []int64
	for _, part := range strings.Split(raw, ",") {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err == nil && id > 0 {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		ids = []int64{1}
	}
	return ids
}
