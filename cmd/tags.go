package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"home-media/core/config"
	"home-media/core/database"
	"home-media/core/logger"
	"home-media/core/reconcile"
	"home-media/core/utils"
	"home-media/feature/tags"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags shared by the tags subcommands
	tagsMediaType string
	tagsMediaID   string
	dryRunTags    bool
	yesConfirm    bool
)

// tagsCmd is the parent command for tag operations.
var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "Inspect and reconcile media tags",
}

// tagsSetCmd reconciles the tags of one media item.
var tagsSetCmd = &cobra.Command{
	Use:   "set [tag...]",
	Short: "Replace the tags of a media item",
	Long: `Replace the tags of a media item with the given list.

Tags that do not exist are created. Tags not in the list are unlinked.
Running the same command twice changes nothing the second time.

Examples:
  # Preview the changes
  tags set --type video --id 3 drama thriller --dry-run

  # Apply without the confirmation prompt
  tags set --type video --id 3 drama thriller --yes

  # Remove every tag
  tags set --type video --id 3 --yes`,
	RunE: runTagsSet,
}

// tagsListCmd prints the tags of one media item.
var tagsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the tags of a media item",
	RunE:  runTagsList,
}

func init() {
	for _, c := range []*cobra.Command{tagsSetCmd, tagsListCmd} {
		c.Flags().StringVar(&tagsMediaType, "type", string(tags.MediaVideo), "Media type (video, show, season, episode, image)")
		c.Flags().StringVar(&tagsMediaID, "id", "", "Media id")
		_ = c.MarkFlagRequired("id")
		tagsCmd.AddCommand(c)
	}

	tagsSetCmd.Flags().BoolVar(&dryRunTags, "dry-run", false, "Print the plan without applying it")
	tagsSetCmd.Flags().BoolVar(&yesConfirm, "yes", false, "Auto-confirm removals (non-interactive)")

	RootCmd.AddCommand(tagsCmd)
}

func newTagService() (*tags.Service, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := tags.Migrate(db); err != nil {
		return nil, nil, fmt.Errorf("failed to migrate tag schema: %w", err)
	}

	return tags.NewService(tags.NewGormStore(db), l), l, nil
}

func mediaFlags() (tags.MediaType, uint, error) {
	mediaType, err := tags.ParseMediaType(tagsMediaType)
	if err != nil {
		return "", 0, err
	}
	mediaID, ok := utils.ToUint(tagsMediaID)
	if !ok {
		return "", 0, fmt.Errorf("invalid media id %q", tagsMediaID)
	}
	return mediaType, mediaID, nil
}

func runTagsSet(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	mediaType, mediaID, err := mediaFlags()
	if err != nil {
		return err
	}

	svc, l, err := newTagService()
	if err != nil {
		return err
	}

	// Step 1: Plan (always runs)
	plan, err := svc.PreviewTags(ctx, mediaType, mediaID, args)
	if err != nil {
		return fmt.Errorf("failed to plan tags: %w", err)
	}
	printTagPlan(l, plan)

	if plan.IsNoop() {
		l.Info("Tags already up to date. No changes required.")
		return nil
	}
	if dryRunTags {
		l.Info("Dry-run mode: No changes were made.")
		return nil
	}

	// Step 2: Confirm removals
	if len(plan.Remove) > 0 && !confirmDestructiveAction() {
		l.Warn("Operation cancelled by user. No changes were made.")
		return nil
	}

	// Step 3: Apply
	result, err := svc.UpdateTags(ctx, mediaType, mediaID, args)
	if err != nil {
		return fmt.Errorf("failed to update tags: %w", err)
	}

	l.Info("Tags updated",
		zap.Strings("created", result.Created),
		zap.Strings("linked", result.Linked),
		zap.Strings("unlinked", result.Unlinked),
	)
	return nil
}

func runTagsList(cmd *cobra.Command, args []string) error {
	mediaType, mediaID, err := mediaFlags()
	if err != nil {
		return err
	}

	svc, _, err := newTagService()
	if err != nil {
		return err
	}

	list, err := svc.ListTags(context.Background(), mediaType, mediaID)
	if err != nil {
		return fmt.Errorf("failed to list tags: %w", err)
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(list)
}

// printTagPlan prints the planned tag changes using logger.
func printTagPlan(l *zap.Logger, plan reconcile.Plan) {
	s := plan.Summary()
	l.Info("Tag plan",
		zap.Int("added", s.Added),
		zap.Int("removed", s.Removed),
		zap.Int("kept", s.Kept),
	)

	for _, action := range plan.Actions() {
		l.Info("Planned action",
			zap.String("type", string(action.Type)),
			zap.String("tag", action.Key),
		)
	}
}

// confirmDestructiveAction prompts the user for confirmation or uses --yes flag.
func confirmDestructiveAction() bool {
	if yesConfirm {
		fmt.Println("\n✓ Auto-confirmed via --yes flag")
		return true
	}

	fmt.Print("\n⚠️  Type 'yes' to confirm tag removals: ")
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	response = strings.TrimSpace(response)
	return response == "yes"
}
