package dashboard

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/rakhi930/microgrid-dashboard/pkg/client"
	"github.com/rakhi930/microgrid-dashboard/pkg/config"
)

// ansiClear clears the screen and homes the cursor between cycles.
const ansiClear = "\033[2J\033[H"

// Loop is the refresh driver. It alternates between two states:
// Displaying (fetch and render once) and Waiting (block for the refresh
// interval). When the sensor fetch comes back absent it instead blocks
// on a manual retry prompt. Everything runs on the caller's goroutine;
// there is no background refresh.
type Loop struct {
	// Fetcher supplies each cycle's data.
	Fetcher Fetcher
	// Interval is the wait between successful cycles, clamped to the
	// configured refresh bounds.
	Interval time.Duration
	// ClearScreen redraws from the top of the terminal each cycle.
	ClearScreen bool

	out io.Writer
	in  *bufio.Reader

	// sleep is swapped out in tests.
	sleep func(time.Duration)
}

// NewLoop returns a refresh driver writing to out and reading retry
// input from in.
func NewLoop(f Fetcher, out io.Writer, in io.Reader, interval time.Duration) *Loop {
	return &Loop{
		Fetcher:  f,
		Interval: interval,
		out:      out,
		in:       bufio.NewReader(in),
		sleep:    time.Sleep,
	}
}

// RunOnce performs a single fetch-and-render cycle. It returns
// ErrUnreachable when no sensor data could be fetched.
func (l *Loop) RunOnce() (*Data, error) {
	d := FetchData(l.Fetcher)
	Render(l.out, d, l.Fetcher.BaseURL())

	if d.Snapshot == nil {
		return d, client.ErrUnreachable
	}
	return d, nil
}

// Run cycles until the user quits from the retry prompt or stdin is
// closed. A successful render waits the refresh interval; a failed one
// waits for manual retry input.
func (l *Loop) Run() error {
	interval := config.ClampRefresh(l.Interval)

	for {
		if l.ClearScreen {
			fmt.Fprint(l.out, ansiClear)
		}

		if _, err := l.RunOnce(); err != nil {
			retry, err := l.promptRetry()
			if err != nil || !retry {
				return nil
			}
			continue
		}

		fmt.Fprintf(l.out, "\nRefreshing in %s (q from the retry prompt quits)\n", interval)
		l.sleep(interval)
	}
}

// promptRetry blocks until the user asks for a retry (Enter or r) or
// quits (q or closed stdin).
func (l *Loop) promptRetry() (bool, error) {
	fmt.Fprint(l.out, "\nPress Enter to retry, or q to quit: ")

	line, err := l.in.ReadString('\n')
	if err != nil {
		logrus.Debugf("retry prompt input closed: %v", err)
		return false, err
	}

	switch strings.TrimSpace(line) {
	case "q", "quit":
		return false, nil
	default:
		return true, nil
	}
}
