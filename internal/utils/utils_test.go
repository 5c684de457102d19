package utils

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSortDatesAscending(t *testing.T) {
	a := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	b := time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC)
	c := time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC)

	sorted := SortDates([]time.Time{b, c, a}, true)
	require.Equal(t, []time.Time{a, b, c}, sorted)
}

func TestSortDatesDescending(t *testing.T) {
	a := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	b := time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC)
	c := time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC)

	sorted := SortDates([]time.Time{b, a, c}, false)
	require.Equal(t, []time.Time{c, b, a}, sorted)
}

func TestSortDatesSortsInPlace(t *testing.T) {
	a := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	b := time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC)

	dates := []time.Time{b, a}
	SortDates(dates, true)
	require.Equal(t, []time.Time{a, b}, dates)
}

func TestExecuteWithMutexSerializes(t *testing.T) {
	const goroutines = 100

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ExecuteWithMutex(func() {
				counter++
			})
		}()
	}
	wg.Wait()

	require.Equal(t, goroutines, counter)
}
