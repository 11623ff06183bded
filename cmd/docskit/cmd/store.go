package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/go-drift/docskit/pkg/storage"
)

func init() {
	storeCmd := &cobra.Command{
		Use:   "store",
		Short: "Inspect and edit persisted playground values",
		Long: `Read and write entries in the configured storage backend.
Values are JSON documents; playground keys are <page>/<block id>.`,
	}

	getCmd := &cobra.Command{
		Use:   "get <key>",
		Short: "Print the stored value for key",
		Args:  cobra.ExactArgs(1),
		RunE:  runStoreGet,
	}
	setCmd := &cobra.Command{
		Use:   "set <key> <json>",
		Short: "Store a JSON value under key",
		Args:  cobra.ExactArgs(2),
		RunE:  runStoreSet,
	}
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List stored keys",
		Args:  cobra.NoArgs,
		RunE:  runStoreList,
	}

	storeCmd.AddCommand(getCmd, setCmd, listCmd)
	RegisterCommand(storeCmd)
}

func openBackend() (storage.Backend, func() error, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	return cfg.OpenBackend()
}

func runStoreGet(cmd *cobra.Command, args []string) error {
	backend, closeFn, err := openBackend()
	if err != nil {
		return err
	}
	defer closeFn()

	raw, ok, err := backend.Get(args[0])
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("key %q not found", args[0])
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), raw)
	return err
}

func runStoreSet(cmd *cobra.Command, args []string) error {
	key := args[0]
	value, err := storage.JSONCodec[any]{}.Decode(args[1])
	if err != nil {
		return fmt.Errorf("value is not valid JSON: %w", err)
	}

	backend, closeFn, err := openBackend()
	if err != nil {
		return err
	}
	defer closeFn()

	store := storage.Open[any](backend, key, nil)
	store.Set(value)
	if err := store.LastErr(); err != nil {
		return fmt.Errorf("value kept in memory only: %w", err)
	}
	logger.Debug("value stored", zap.String("key", key), zap.Stringer("store", store))
	return nil
}

func runStoreList(cmd *cobra.Command, args []string) error {
	backend, closeFn, err := openBackend()
	if err != nil {
		return err
	}
	defer closeFn()

	lister, ok := backend.(storage.Lister)
	if !ok {
		return fmt.Errorf("storage backend cannot list keys")
	}
	keys, err := lister.Keys()
	if err != nil {
		return err
	}
	for _, key := range keys {
		fmt.Fprintln(cmd.OutOrStdout(), key)
	}
	return nil
}
