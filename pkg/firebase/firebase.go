package firebase

import (
	"context"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/storage"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// App bundles the Firebase service clients the application depends on:
// the identity provider, the products document store and the object store.
type App struct {
	Auth      *auth.Client
	Firestore *firestore.Client
	Bucket    *storage.BucketHandle
}

// NewApp initializes the Firebase app using the provided credentials file
// and resolves the Auth, Firestore and Storage clients from it.
func NewApp(ctx context.Context, projectID, credentialsFile, storageBucket string) (*App, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	cfg := &firebase.Config{
		ProjectID:     projectID,
		StorageBucket: storageBucket,
	}

	app, err := firebase.NewApp(ctx, cfg, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get auth client: %w", err)
	}

	firestoreClient, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get firestore client: %w", err)
	}

	storageClient, err := app.Storage(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get storage client: %w", err)
	}

	bucket, err := storageClient.DefaultBucket()
	if err != nil {
		return nil, fmt.Errorf("failed to get default bucket: %w", err)
	}

	log.Println("[Firebase] Clients initialized successfully")
	return &App{
		Auth:      authClient,
		Firestore: firestoreClient,
		Bucket:    bucket,
	}, nil
}

// Close releases the Firestore client connection.
func (a *App) Close() error {
	return a.Firestore.Close()
}
