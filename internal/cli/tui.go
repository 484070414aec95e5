package cli

import (
	"context"
	"fmt"
	"sync"

	"github.com/Cyclone1070/cmsg/internal/config"
	"github.com/Cyclone1070/cmsg/internal/generator"
	"github.com/Cyclone1070/cmsg/internal/ui"
	"github.com/Cyclone1070/cmsg/internal/ui/services"
	"github.com/charmbracelet/bubbles/spinner"
	"go.uber.org/zap"
)

func createUI(cfg *config.Config) *ui.UI {
	channels := ui.NewUIChannels()
	renderer := services.NewGlamourRenderer()
	spinnerFactory := func() spinner.Model {
		return spinner.New(spinner.WithSpinner(spinner.Dot))
	}
	return ui.NewUI(channels, cfg, renderer, spinnerFactory)
}

// runTUI runs the generator against the Bubble Tea interface. The pipeline
// runs in a goroutine gated on the UI's ready signal; the program itself must
// run on the calling goroutine. Closing the UI (ctrl+c) cancels the pipeline
// context, which surfaces as an abort.
func runTUI(ctx context.Context, cfg *config.Config, opts generator.Options, statusText string, logger *zap.Logger) (string, error) {
	tui := createUI(cfg)

	genCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup
	var result string
	var runErr error

	wg.Add(1)
	go func() {
		defer wg.Done()

		<-tui.Ready() // Wait for UI to be ready

		gen := generator.New(opts, tui, logger)
		result, runErr = gen.Run(genCtx, statusText)

		// Close the program; Start below returns and the terminal is restored
		// before the message is printed.
		tui.Quit()
	}()

	if err := tui.Start(); err != nil {
		cancel()
		wg.Wait()
		return "", fmt.Errorf("failed to run UI: %w", err)
	}

	// UI exited, release the pipeline if it is still blocked on a request
	cancel()
	wg.Wait()

	return result, runErr
}
