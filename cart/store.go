package cart

import (
    "context"
    "encoding/json"
    "fmt"
    "time"

    "github.com/go-redis/redis/v8"

    "pagarme-payment-bridge/models"
)

const cartTTL = 7 * 24 * time.Hour

// Store keeps carts in Redis keyed by the checkout session id, so the
// bridge can empty the cart after a successful payment.
type Store struct {
    client *redis.Client
}

func NewStore(redisURL string) (*Store, error) {
    opt, err := redis.ParseURL(redisURL)
    if err != nil {
        return nil, fmt.Errorf("invalid Redis URL: %v", err)
    }

    client := redis.NewClient(opt)
    ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
    defer cancel()

    if err := client.Ping(ctx).Err(); err != nil {
        return nil, fmt.Errorf("failed to connect to Redis: %v", err)
    }

    return &Store{client: client}, nil
}

func cartKey(sessionID string) string {
    return "cart:" + sessionID
}

func (s *Store) Get(ctx context.Context, sessionID string) ([]models.CartItem, error) {
    raw, err := s.client.Get(ctx, cartKey(sessionID)).Result()
    if err == redis.Nil {
        return []models.CartItem{}, nil
    }
    if err != nil {
        return nil, fmt.Errorf("failed to load cart: %v", err)
    }

    var items []models.CartItem
    if err := json.Unmarshal([]byte(raw), &items); err != nil {
        return nil, fmt.Errorf("failed to unmarshal cart: %v", err)
    }
    return items, nil
}

func (s *Store) Add(ctx context.Context, sessionID string, item models.CartItem) error {
    items, err := s.Get(ctx, sessionID)
    if err != nil {
        return err
    }

    found := false
    for i := range items {
        if items[i].ProductID == item.ProductID {
            items[i].Quantity += item.Quantity
            found = true
            break
        }
    }
    if !found {
        items = append(items, item)
    }

    raw, err := json.Marshal(items)
    if err != nil {
        return fmt.Errorf("failed to marshal cart: %v", err)
    }

    if err := s.client.Set(ctx, cartKey(sessionID), raw, cartTTL).Err(); err != nil {
        return fmt.Errorf("failed to save cart: %v", err)
    }
    return nil
}

func (s *Store) Clear(ctx context.Context, sessionID string) error {
    if err := s.client.Del(ctx, cartKey(sessionID)).Err(); err != nil {
        return fmt.Errorf("failed to clear cart: %v", err)
    }
    return nil
}

func (s *Store) Close() error {
    return s.client.Close()
}
