package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"satoru/internal/client/api"
	"satoru/internal/client/realtime"
	"satoru/internal/errors"

	"github.com/fatih/color"
)

var (
	cyan   = color.New(color.FgCyan)
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed)
)

func runWatch(ctx context.Context, flags connFlags) error {
	a, err := newApp(ctx, flags)
	if err != nil {
		return err
	}
	defer a.close(context.Background())

	ch, err := a.channel()
	if err != nil {
		return err
	}
	defer ch.Disconnect()

	ch.OnStateChange(func(s realtime.State) {
		yellow.Printf("    ● %s\n", s)
	})
	ch.OnUpdate(func(u realtime.DocumentUpdate) {
		var doc api.Document
		if err := u.Decode(&doc); err != nil {
			red.Printf("    ✗ undecodable update: %v\n", err)

			return
		}
		printDocument(&doc)
	})

	cyan.Printf("Watching documents of %s (Ctrl+C to stop)\n", a.session.User.Email)
	ch.Connect(a.session.User.ID)
	<-ctx.Done()

	return nil
}

func runUpload(ctx context.Context, flags connFlags, path, title string, timeout time.Duration) error {
	file, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "open upload")
	}
	defer file.Close()

	a, err := newApp(ctx, flags)
	if err != nil {
		return err
	}
	defer a.close(context.Background())

	ch, err := a.channel()
	if err != nil {
		return err
	}
	defer ch.Disconnect()

	// Subscribe before uploading so a fast worker cannot finish unseen.
	finished := make(chan api.Document, 16)
	ch.OnUpdate(func(u realtime.DocumentUpdate) {
		var doc api.Document
		if err := u.Decode(&doc); err == nil && doc.Done() {
			select {
			case finished <- doc:
			default:
			}
		}
	})
	ch.Connect(a.session.User.ID)

	doc, err := a.docs.Upload(ctx, api.UploadInput{FileName: path, Title: title, Content: file})
	if err != nil {
		return errors.Wrap(err, "upload")
	}
	green.Print("    ▶ ")
	fmt.Printf("Uploaded %q as %s, waiting for processing\n", doc.Title, doc.ID)

	done, err := waitForDocument(ctx, finished, doc.ID, timeout, a.docs.Get)
	if errors.Is(err, context.Canceled) {
		yellow.Println("    Stopped waiting; the document keeps processing on the server.")

		return nil
	}
	if err != nil {
		return err
	}

	return printResult(ctx, a, done)
}

// waitForDocument returns the finished document with the given id, taken from
// finished or, once timeout passes, fetched directly in case the update was
// missed while reconnecting. Cancelling ctx stops the wait with ctx's error.
func waitForDocument(
	ctx context.Context,
	finished <-chan api.Document,
	id string,
	timeout time.Duration,
	fetch func(context.Context, string) (*api.DocumentDetail, error),
) (*api.Document, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil, errors.WithStack(ctx.Err())
		case doc := <-finished:
			if doc.ID == id {
				return &doc, nil
			}
		case <-timer.C:
			detail, err := fetch(ctx, id)
			if err != nil {
				return nil, err
			}
			if !detail.Done() {
				return nil, errors.Errorf("document %s still %s after %s", id, detail.Status, timeout)
			}

			return &detail.Document, nil
		}
	}
}

func printResult(ctx context.Context, a *app, doc *api.Document) error {
	printDocument(doc)
	if doc.Status == api.StatusFailed {
		return errors.Errorf("processing failed: %s", doc.Error)
	}

	detail, err := a.docs.Get(ctx, doc.ID)
	if err != nil {
		return err
	}

	if detail.Summary != nil {
		cyan.Println("\nSummary")
		fmt.Println(detail.Summary.Summary)
		for _, point := range detail.Summary.KeyPoints {
			fmt.Printf("  • %s\n", point)
		}
	}

	cyan.Printf("\nFlashcards (%d)\n", len(detail.Flashcards))
	for _, card := range detail.Flashcards {
		yellow.Printf("%2d. [%s] ", card.Order, card.Difficulty)
		fmt.Println(card.Question)
		fmt.Printf("    %s\n", strings.ReplaceAll(card.Answer, "\n", "\n    "))
	}

	return nil
}

func runStats(ctx context.Context, flags connFlags) error {
	a, err := newApp(ctx, flags)
	if err != nil {
		return err
	}
	defer a.close(context.Background())

	stats, err := a.docs.Stats(ctx)
	if err != nil {
		return err
	}

	rows := []struct {
		label string
		value int64
	}{
		{"Documents", stats.TotalDocuments},
		{"Completed", stats.Completed},
		{"Processing", stats.Processing},
		{"Failed", stats.Failed},
		{"Pages", stats.TotalPages},
		{"Flashcards", stats.TotalFlashcards},
	}
	for _, row := range rows {
		green.Print("    ▶ ")
		fmt.Printf("%-11s %d\n", row.label+":", row.value)
	}

	return nil
}

func printDocument(doc *api.Document) {
	switch doc.Status {
	case api.StatusCompleted:
		green.Print("    ✓ ")
		fmt.Printf("%s %q completed (%d pages)\n", doc.ID, doc.Title, doc.Pages)
	case api.StatusFailed:
		red.Print("    ✗ ")
		fmt.Printf("%s %q failed: %s\n", doc.ID, doc.Title, doc.Error)
	default:
		yellow.Print("    … ")
		fmt.Printf("%s %q %s\n", doc.ID, doc.Title, doc.Status)
	}
}
