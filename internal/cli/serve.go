package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/anchorlayer/anchorage/internal/server"
	"github.com/anchorlayer/anchorage/pkg/cache"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr     string // listen address
	dataDir  string // scene directory for the file store
	mongoURI string // MongoDB connection string (overrides the file store)
	mongoDB  string // MongoDB database name
	redis    string // Redis address for the frame cache
	noCache  bool   // disable frame caching
}

// serveCommand creates the serve command for running the preview
// server.
func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOpts{
		addr:    ":8080",
		dataDir: "scenes",
		mongoDB: appName,
	}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the scene preview server",
		Long: `Run the HTTP preview server exposing scene CRUD and rendering endpoints.

Scenes are stored on disk by default; pass --mongo to store them in
MongoDB instead. Rendered frames are cached in the local cache
directory, or in Redis when --redis is set.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), c, &opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().StringVar(&opts.dataDir, "data-dir", opts.dataDir, "scene directory for the file store")
	cmd.Flags().StringVar(&opts.mongoURI, "mongo", "", "MongoDB connection string (uses MongoDB instead of the file store)")
	cmd.Flags().StringVar(&opts.mongoDB, "mongo-db", opts.mongoDB, "MongoDB database name")
	cmd.Flags().StringVar(&opts.redis, "redis", "", "Redis address for the frame cache (host:port)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable frame caching")

	return cmd
}

// runServe builds the store and cache backends and serves until the
// context is cancelled.
func runServe(ctx context.Context, c *CLI, opts *serveOpts) error {
	store, err := newSceneStore(ctx, c, opts)
	if err != nil {
		return err
	}
	defer store.Close()

	frameCache, err := newFrameCache(ctx, c, opts)
	if err != nil {
		return err
	}
	defer frameCache.Close()

	srv := &http.Server{
		Addr: opts.addr,
		Handler: server.New(server.Config{
			Store:  store,
			Cache:  frameCache,
			Logger: c.Logger,
		}),
		ReadHeaderTimeout: 5 * time.Second,
	}

	printKeyValue("address", opts.addr)

	errc := make(chan error, 1)
	go func() {
		c.Logger.Info("preview server listening", "addr", opts.addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		c.Logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func newSceneStore(ctx context.Context, c *CLI, opts *serveOpts) (server.SceneStore, error) {
	if opts.mongoURI != "" {
		c.Logger.Info("using MongoDB scene store", "db", opts.mongoDB)
		return server.NewMongoStore(ctx, opts.mongoURI, opts.mongoDB)
	}
	c.Logger.Info("using file scene store", "dir", opts.dataDir)
	return server.NewFileStore(opts.dataDir)
}

func newFrameCache(ctx context.Context, c *CLI, opts *serveOpts) (cache.Cache, error) {
	if opts.noCache {
		printWarning("Frame caching disabled")
		return cache.NewNullCache(), nil
	}
	if opts.redis != "" {
		c.Logger.Info("using Redis frame cache", "addr", opts.redis)
		return cache.NewRedisCache(ctx, opts.redis)
	}
	return newCache(false)
}
