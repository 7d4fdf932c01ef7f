package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os/signal"
	"strings"
	"syscall"

	"github.com/google/uuid"

	"jarvis/internal/app"
	"jarvis/internal/domain"
)

const (
	colorReset  = "\033[0m"
	colorGreen  = "\033[92m"
	colorBlue   = "\033[94m"
	colorCyan   = "\033[96m"
	colorYellow = "\033[93m"
	colorPink   = "\033[95m"
	colorRed    = "\033[91m"
)

const welcomeBanner = colorBlue + `
╔══════════════════════════════════════════════════════════════╗
║                     JARVIS  AI  ASSISTANT                    ║
║                                                              ║
║   System control, hardware access, bilingual (en/hi),        ║
║   adaptive learning.                                         ║
╚══════════════════════════════════════════════════════════════╝
` + colorReset

// runConsole drives the interactive read-eval loop. One console run is
// one session; Ctrl-C or EOF ends it gracefully.
func runConsole(ctx context.Context, container *app.Container, in io.Reader, out io.Writer) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	sessionID := uuid.New().String()
	localize := func(key string) string {
		return container.Localizer.Text(container.Detector.Active(), key)
	}

	fmt.Fprintln(out, welcomeBanner)
	fmt.Fprintf(out, "%s%s%s\n", colorCyan, localize("welcome_message"), colorReset)
	if container.Voice.Enabled() {
		container.Voice.Speak(localize("welcome_message"), container.Detector.Active())
	}

	lines := readLines(in)
	for {
		fmt.Fprintf(out, "%s%s: %s", colorGreen, localize("user_prompt"), colorReset)

		var text string
		var ok bool
		select {
		case <-ctx.Done():
			ok = false
		case text, ok = <-lines:
		}
		if !ok {
			fmt.Fprintf(out, "\n%s%s%s\n", colorYellow, localize("shutdown_message"), colorReset)
			return nil
		}

		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}

		resp := container.Assistant.Process(ctx, domain.NewCommand(text, sessionID))
		printResponse(out, resp)
	}
}

func printResponse(out io.Writer, resp domain.AIResponse) {
	if !resp.Success {
		fmt.Fprintf(out, "%sERROR: %s%s\n", colorRed, resp.Text, colorReset)
		return
	}
	fmt.Fprintf(out, "%sJARVIS: %s%s\n", colorBlue, resp.Text, colorReset)
	if resp.SystemResult != "" {
		fmt.Fprintf(out, "%sSystem: %s%s\n", colorYellow, resp.SystemResult, colorReset)
	}
	if resp.HardwareResult != "" {
		fmt.Fprintf(out, "%sHardware: %s%s\n", colorPink, resp.HardwareResult, colorReset)
	}
}

// readLines pumps stdin lines into a channel so the loop can select
// between input and cancellation. The pump goroutine exits with the
// process once stdin closes.
func readLines(in io.Reader) <-chan string {
	ch := make(chan string)
	go func() {
		defer close(ch)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			ch <- scanner.Text()
		}
	}()
	return ch
}
