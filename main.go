// SPDX-License-Identifier: GPL-3.0-or-later
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/CrawX/imap-readinglist/config"
	"github.com/CrawX/imap-readinglist/docstore"
	"github.com/CrawX/imap-readinglist/domain"
	"github.com/CrawX/imap-readinglist/imapqueue"
	"github.com/CrawX/imap-readinglist/log"
	"github.com/CrawX/imap-readinglist/pop3queue"
	"github.com/CrawX/imap-readinglist/readinglist"
	"github.com/CrawX/imap-readinglist/transform"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type flags struct {
	configFile string
	loglevel   string
	dryRun     bool
	showDiff   bool
}

func main() {
	f := &flags{}
	rootCmd := &cobra.Command{
		Use:           "imap-readinglist",
		Short:         "Turn the links mailed to a queue mailbox into a reading list",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, f)
		},
	}

	rootCmd.Flags().StringVarP(&f.configFile, "config", "c", "config.toml", "path to the configuration file")
	rootCmd.Flags().StringVar(&f.loglevel, "loglevel", "", "log level (trace, debug, info, warn, error), overrides the config file")
	rootCmd.Flags().BoolVar(&f.dryRun, "dry-run", false, "merge and show the changes without writing the document or touching the mailbox")
	rootCmd.Flags().BoolVar(&f.showDiff, "show-diff", false, "log a diff of the document before writing it")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, f *flags) error {
	log.InitLogging("info")
	logger := log.Logger(log.LOG_MAIN)

	conf, err := config.ReadConfig(f.configFile)
	if err != nil {
		logger.WithField("error", err).Fatal("Could not load config")
	}

	if cmd.Flags().Changed("loglevel") {
		log.SetLogLevel(f.loglevel)
	} else if conf.Loglevel != nil {
		log.SetLogLevel(*conf.Loglevel)
	}
	if cmd.Flags().Changed("dry-run") {
		conf.DryRun = f.dryRun
	}
	if cmd.Flags().Changed("show-diff") {
		conf.ShowDiff = f.showDiff
	}

	rules, err := conf.Rules()
	if err != nil {
		logger.WithField("error", err).Fatal("Could not load rewrite rules")
	}

	store, closeStore, err := openStore(conf)
	if err != nil {
		logger.WithField("error", err).Fatal("Could not open document store")
	}
	defer closeStore()

	configs := []readinglist.ConfigFunc{readinglist.Document(conf.Document)}
	if conf.DryRun {
		configs = append(configs, readinglist.DryRun())
	}
	if conf.ShowDiff {
		configs = append(configs, readinglist.ShowDiff())
	}

	rl, err := readinglist.NewReadingList(dialer(conf), store, transform.NewTransformer(rules), configs...)
	if err != nil {
		logger.WithField("error", err).Fatal("Could not set up reading list")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.WithFields(logrus.Fields{"server": conf.Host, "protocol": conf.Protocol, "document": conf.Document, "dryrun": conf.DryRun}).Info("Processing queue")
	result, err := rl.Run(ctx)
	if err != nil {
		if domain.IsBenignSessionError(err) {
			logger.WithField("error", err).Info("Session ended by server, nothing to do")
			return nil
		}
		closeStore()
		logger.WithFields(logrus.Fields{"error": err, "state": result.FailedIn}).Fatal("Run failed")
	}

	logger.WithFields(logrus.Fields{"entries": len(result.Entries), "consumed": len(result.Consumed), "skipped": len(result.Skipped)}).Info("Done")
	return nil
}

func dialer(conf *config.Config) domain.QueueDialer {
	if conf.Protocol == config.ProtocolPop3 {
		return pop3queue.Dialer(pop3queue.Options{
			Host:               conf.Host,
			User:               conf.User,
			Password:           conf.Password,
			InsecureSkipVerify: conf.InsecureSkipVerify,
			Timeout:            conf.Timeout(),
		})
	}

	return imapqueue.Dialer(imapqueue.Options{
		Host:               conf.Host,
		User:               conf.User,
		Password:           conf.Password,
		Mailbox:            conf.Mailbox,
		Compress:           conf.Compress,
		InsecureSkipVerify: conf.InsecureSkipVerify,
		Timeout:            conf.Timeout(),
	})
}

func openStore(conf *config.Config) (domain.DocumentStore, func(), error) {
	if conf.DocumentStore == config.StoreSqlite {
		store, err := docstore.NewSQLStore(conf.Database)
		if err != nil {
			return nil, nil, err
		}
		closed := false
		return store, func() {
			if !closed {
				closed = true
				_ = store.Close()
			}
		}, nil
	}

	store, err := docstore.NewFileStore(conf.DocumentDir)
	if err != nil {
		return nil, nil, err
	}
	return store, func() {}, nil
}
