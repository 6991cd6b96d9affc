package kv

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"os"
	"sort"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const defaultFirestoreCollection = "kv"

// FirestoreStore stores each key as a document {value, updatedAt} in one collection.
type FirestoreStore struct {
	client     *firestore.Client
	collection string
}

// NewFirestoreStore first looks for base64 service-account JSON in
// FIREBASE_SERVICE_ACCOUNT_JSON, then credentialsFile. With neither set it
// falls back to application default credentials, which also covers
// FIRESTORE_EMULATOR_HOST.
func NewFirestoreStore(ctx context.Context, projectID, collection, credentialsFile string) (*FirestoreStore, error) {
	if collection == "" {
		collection = defaultFirestoreCollection
	}

	var opts []option.ClientOption
	if encoded := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON"); encoded != "" {
		decoded, err := base64.StdEncoding.DecodeString(encoded)
		if err != nil {
			return nil, fmt.Errorf("failed to decode base64 firebase credentials: %w", err)
		}
		opts = append(opts, option.WithCredentialsJSON(decoded))
		log.Println("NewFirestoreStore: using FIREBASE_SERVICE_ACCOUNT_JSON")
	} else if credentialsFile != "" {
		if _, err := os.Stat(credentialsFile); err != nil {
			return nil, fmt.Errorf("firebase credentials file %s: %w", credentialsFile, err)
		}
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
		log.Printf("NewFirestoreStore: using credentials file %s", credentialsFile)
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("error initializing firebase app: %w", err)
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting firestore client: %w", err)
	}

	return &FirestoreStore{client: client, collection: collection}, nil
}

func (f *FirestoreStore) Get(ctx context.Context, key string) (string, bool, error) {
	snap, err := f.client.Collection(f.collection).Doc(key).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("firestore get %s: %w", key, err)
	}

	raw, err := snap.DataAt("value")
	if err != nil {
		return "", false, fmt.Errorf("firestore get %s: %w", key, err)
	}
	value, ok := raw.(string)
	if !ok {
		return "", false, fmt.Errorf("firestore get %s: value is %T, want string", key, raw)
	}
	return value, true, nil
}

func (f *FirestoreStore) Put(ctx context.Context, key, value string) error {
	_, err := f.client.Collection(f.collection).Doc(key).Set(ctx, map[string]interface{}{
		"value":     value,
		"updatedAt": firestore.ServerTimestamp,
	})
	if err != nil {
		return fmt.Errorf("firestore set %s: %w", key, err)
	}
	return nil
}

func (f *FirestoreStore) List(ctx context.Context) ([]string, error) {
	var keys []string
	refs := f.client.Collection(f.collection).DocumentRefs(ctx)
	for {
		ref, err := refs.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("firestore list: %w", err)
		}
		keys = append(keys, ref.ID)
	}
	sort.Strings(keys)
	return keys, nil
}

func (f *FirestoreStore) Ping(ctx context.Context) error {
	docs := f.client.Collection(f.collection).Limit(1).Documents(ctx)
	defer docs.Stop()
	if _, err := docs.Next(); err != nil && err != iterator.Done {
		return err
	}
	return nil
}

func (f *FirestoreStore) Close() error {
	return f.client.Close()
}
