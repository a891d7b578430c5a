// Command mtrie is a small CLI over the trie engine: open a store, update or
// read keys, print the root hash, or dump every key/value pair.
package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/jaiminpan/mt-trie/common"
	"github.com/jaiminpan/mt-trie/config"
	"github.com/jaiminpan/mt-trie/log"
	"github.com/jaiminpan/mt-trie/nodestore"
	"github.com/jaiminpan/mt-trie/nodestore/memorydb"
	"github.com/jaiminpan/mt-trie/trie"
)

var configFlag = &cli.StringFlag{
	Name:  "config",
	Usage: "path to a YAML config file (engine, store_path, log_level)",
}

var rootFlag = &cli.StringFlag{
	Name:  "root",
	Usage: "hex-encoded root hash to open (omit for an empty trie)",
}

func main() {
	app := &cli.App{
		Name:  "mtrie",
		Usage: "inspect and mutate a content-addressed Merkle-Patricia trie",
		Flags: []cli.Flag{configFlag},
		Commands: []*cli.Command{
			{
				Name:      "put",
				Usage:     "update key to value, printing the new root",
				ArgsUsage: "<key> <value>",
				Flags:     []cli.Flag{rootFlag},
				Action:    runPut,
			},
			{
				Name:      "get",
				Usage:     "print the value stored at key",
				ArgsUsage: "<key>",
				Flags:     []cli.Flag{rootFlag},
				Action:    runGet,
			},
			{
				Name:   "iterate",
				Usage:  "dump every key/value pair in path order",
				Flags:  []cli.Flag{rootFlag},
				Action: runIterate,
			},
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Error("mtrie: command failed", "err", err)
		os.Exit(1)
	}
}

func loadConfig(c *cli.Context) (*config.Config, error) {
	if p := c.String(configFlag.Name); p != "" {
		return config.Load(p)
	}
	return config.Default(), nil
}

func openDatabase(cfg *config.Config) (*trie.Database, error) {
	if cfg.Engine == config.EngineMemory {
		return trie.NewDatabase(nodestore.NewStore(memorydb.New())), nil
	}
	store, err := nodestore.Default.OpenDurable(cfg.StorePath)
	if err != nil {
		return nil, err
	}
	return trie.NewDatabase(store), nil
}

func openTrie(c *cli.Context) (*trie.Trie, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, err
	}
	db, err := openDatabase(cfg)
	if err != nil {
		return nil, err
	}
	var root common.Hash
	if r := c.String(rootFlag.Name); r != "" {
		b, err := hex.DecodeString(r)
		if err != nil {
			return nil, fmt.Errorf("invalid --root: %w", err)
		}
		root = common.BytesToHash(b)
	}
	return trie.New(trie.TrieID(root), db)
}

func runPut(c *cli.Context) error {
	if c.NArg() != 2 {
		return fmt.Errorf("usage: mtrie put <key> <value>")
	}
	t, err := openTrie(c)
	if err != nil {
		return err
	}
	if err := t.TryUpdate([]byte(c.Args().Get(0)), []byte(c.Args().Get(1))); err != nil {
		return err
	}
	fmt.Println(hex.EncodeToString(t.Root().Bytes()))
	return nil
}

func runGet(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("usage: mtrie get <key>")
	}
	t, err := openTrie(c)
	if err != nil {
		return err
	}
	v, err := t.TryGet([]byte(c.Args().Get(0)))
	if err != nil {
		return err
	}
	fmt.Println(string(v))
	return nil
}

func runIterate(c *cli.Context) error {
	t, err := openTrie(c)
	if err != nil {
		return err
	}
	it := trie.NewIterator(t)
	for it.Next() {
		fmt.Printf("%x = %s\n", it.Key, it.Value)
	}
	return it.Err
}
