// Dictate command for the taskdesk CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dmaldon/taskdesk/internal/voice"
	"github.com/dmaldon/taskdesk/pkg/types"
)

var (
	dictateText   string
	dictateDryRun bool
)

// dictateTimeout bounds how long the command waits for transcript input.
const dictateTimeout = 30 * time.Second

var dictateCmd = &cobra.Command{
	Use:   "dictate",
	Short: "Create a task from a dictated transcript",
	Long: `Dictate parses a transcribed sentence into a task draft and creates the
task. The transcript comes from --text, or from stdin when the flag is omitted
or set to "-".

The words "detail", "date", "priority", and "category" introduce fields;
"finish" ends the dictation. Example:

  taskdesk dictate --text "buy milk date twelve june priority high category home"`,
	Args: cobra.NoArgs,
	RunE: runDictate,
}

func init() {
	dictateCmd.Flags().StringVar(&dictateText, "text", "", "transcript to parse (stdin when omitted)")
	dictateCmd.Flags().BoolVar(&dictateDryRun, "dry-run", false, "print the parsed draft without creating a task")
}

func runDictate(cmd *cobra.Command, args []string) error {
	backend, err := attachBackend()
	if err != nil {
		fail("dictate", err)
	}
	defer backend.Detach()

	cats, err := backend.ListCategories()
	if err != nil {
		fail("dictate", err)
	}
	vocabulary := make([]string, 0, len(cats))
	for _, c := range cats {
		vocabulary = append(vocabulary, c.Name)
	}

	var recognizer voice.Recognizer
	if dictateText != "" && dictateText != "-" {
		recognizer = voice.Static(dictateText)
	} else {
		recognizer = voice.FromReader(os.Stdin)
	}

	session := uuid.NewString()
	logger.Info("dictation session started", zap.String("session", session))

	ctx, cancel := context.WithTimeout(cmd.Context(), dictateTimeout)
	defer cancel()

	result := <-voice.Capture(ctx, recognizer, vocabulary)
	if result.Err != nil {
		logger.Error("dictation failed",
			zap.String("session", session), zap.Error(result.Err))
		fail("dictate", result.Err)
	}
	draft := result.Draft

	logger.Info("dictation parsed",
		zap.String("session", session),
		zap.String("title", draft.Title),
		zap.Bool("auto_submit", draft.AutoSubmit))

	if dictateDryRun {
		printJSON(draft)
		return nil
	}

	params := types.TaskParams{
		Title:       draft.Title,
		Description: draft.Description,
		DueDate:     draft.DueDateText,
		Priority:    draft.Priority,
	}
	if draft.Category != "" {
		ref, err := resolveCategoryName(backend, draft.Category)
		if err != nil {
			fail("dictate", err)
		}
		params.CategoryID = ref
	}

	task, err := backend.CreateTask(params)
	if err != nil {
		fail("dictate", err)
	}

	fmt.Printf("Task %d created: %s\n", task.ID, task.Title)
	return nil
}
