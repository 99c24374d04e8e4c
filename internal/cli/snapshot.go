package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/twistyworks/twisty/internal/storage"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Manage stored cube snapshots",
}

var snapshotName string

var snapshotSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save the current cube state as a snapshot",
	Long: `Build a cube (painted with the classic scheme, a --scheme file, or
left --blank) and store its sticker state under a new snapshot ID.`,
	RunE: runSnapshotSave,
}

var snapshotListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored snapshots",
	RunE:  runSnapshotList,
}

var snapshotShowCmd = &cobra.Command{
	Use:   "show <snapshot-id>",
	Short: "Render a stored snapshot",
	Args:  cobra.ExactArgs(1),
	RunE:  runSnapshotShow,
}

var snapshotRmCmd = &cobra.Command{
	Use:   "rm <snapshot-id>",
	Short: "Delete a stored snapshot",
	Args:  cobra.ExactArgs(1),
	RunE:  runSnapshotRm,
}

func init() {
	snapshotSaveCmd.Flags().StringVar(&snapshotName, "name", "cube", "Snapshot name")
	snapshotSaveCmd.Flags().StringVar(&showSchemePath, "scheme", "", "Color scheme YAML file (default: classic)")
	snapshotSaveCmd.Flags().BoolVar(&showBlank, "blank", false, "Save the cube without painting it")

	snapshotCmd.AddCommand(snapshotSaveCmd)
	snapshotCmd.AddCommand(snapshotListCmd)
	snapshotCmd.AddCommand(snapshotShowCmd)
	snapshotCmd.AddCommand(snapshotRmCmd)
	rootCmd.AddCommand(snapshotCmd)
}

// openDB opens the snapshot database from the --db flag or default
// path and applies migrations.
func openDB() (*storage.DB, error) {
	var db *storage.DB
	var err error
	if dbPath != "" {
		db, err = storage.Open(dbPath)
	} else {
		db, err = storage.OpenDefault()
	}
	if err != nil {
		return nil, err
	}

	if err := db.MigrateUp(); err != nil {
		db.Close()
		return nil, err
	}

	logger.Debug().Str("path", db.Path()).Msg("opened snapshot database")
	return db, nil
}

func runSnapshotSave(cmd *cobra.Command, args []string) error {
	c, err := buildCube()
	if err != nil {
		return err
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	id, err := storage.NewSnapshotRepository(db).Save(c, snapshotName)
	if err != nil {
		return err
	}

	fmt.Printf("Saved snapshot %s (%s)\n", id, snapshotName)
	return nil
}

func runSnapshotList(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	snapshots, err := storage.NewSnapshotRepository(db).List(50)
	if err != nil {
		return err
	}

	if len(snapshots) == 0 {
		fmt.Println("No snapshots stored")
		return nil
	}

	for _, s := range snapshots {
		fmt.Printf("%s  %-20s  %s\n", s.SnapshotID, s.Name, s.CreatedAt.Format("2006-01-02 15:04:05"))
	}
	return nil
}

func runSnapshotShow(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	c, err := storage.NewSnapshotRepository(db).Load(args[0])
	if err != nil {
		return err
	}

	fmt.Print(renderCube(c))
	return nil
}

func runSnapshotRm(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := storage.NewSnapshotRepository(db).Delete(args[0]); err != nil {
		return err
	}

	fmt.Printf("Deleted snapshot %s\n", args[0])
	return nil
}
