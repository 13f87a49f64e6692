package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"farmdirect/marketplace/internal/config"
	"farmdirect/marketplace/internal/handler"
	"farmdirect/marketplace/internal/repository"
	"farmdirect/marketplace/internal/service"
	"farmdirect/marketplace/internal/store"
)

func main() {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Seed the mock data. Everything lives in memory and vanishes on
	// restart; that is the point of the demo.
	directory := repository.NewDirectory(repository.SeedUsers())
	catalog := repository.NewCatalog(repository.SeedProducts())
	orders := repository.NewOrderBook(repository.SeedOrders())

	// 3. Setup Logic
	st := store.New(store.Config{
		Directory: directory,
		AuthDelay: cfg.AuthDelay,
	})
	catalogSvc := service.NewCatalogService(catalog)
	checkoutSvc := service.NewCheckoutService(st, orders)
	productSvc := service.NewProductService(catalog)

	h := handler.New(st, catalogSvc, checkoutSvc, productSvc)

	// 4. Setup Server
	server := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: h,
	}

	// 5. Run Server with Graceful Shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		fmt.Printf("Starting server on port %s\n", cfg.ServerPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		fmt.Println("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
	fmt.Println("Server exiting")
}
