package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/GoSim-25-26J-441/todo-backend/internal/todos/domain"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	todoKeyPrefix = "todo:item:" // Hash per todo: todo:item:{id} -> title, done
	todoOrderKey  = "todo:order" // List of todo IDs in insertion order
)

// toggleScript flips the done field of one todo hash and returns {title, done}.
// Returns nil when the hash does not exist.
var toggleScript = redis.NewScript(`
local done = redis.call('HGET', KEYS[1], 'done')
if not done then
	return false
end
if done == '1' then
	done = '0'
else
	done = '1'
end
redis.call('HSET', KEYS[1], 'done', done)
return {redis.call('HGET', KEYS[1], 'title'), done}
`)

// RedisStore keeps todos in Redis so several API instances can share one list
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a new RedisStore
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Add creates a todo and appends its ID to the order list in one transaction
func (r *RedisStore) Add(ctx context.Context, title string) (domain.Todo, error) {
	todo := domain.Todo{
		ID:    uuid.New().String(),
		Title: title,
		Done:  false,
	}

	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, r.todoKey(todo.ID), "title", todo.Title, "done", encodeDone(todo.Done))
		pipe.RPush(ctx, todoOrderKey, todo.ID)
		return nil
	})
	if err != nil {
		return domain.Todo{}, fmt.Errorf("failed to create todo: %w", err)
	}

	return todo, nil
}

// List returns all todos in insertion order
func (r *RedisStore) List(ctx context.Context) ([]domain.Todo, error) {
	ids, err := r.client.LRange(ctx, todoOrderKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list todo ids: %w", err)
	}

	todos := make([]domain.Todo, 0, len(ids))
	if len(ids) == 0 {
		return todos, nil
	}

	pipe := r.client.Pipeline()
	cmds := make([]*redis.SliceCmd, len(ids))
	for i, id := range ids {
		cmds[i] = pipe.HMGet(ctx, r.todoKey(id), "title", "done")
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to load todos: %w", err)
	}

	for i, id := range ids {
		vals := cmds[i].Val()
		if len(vals) != 2 || vals[0] == nil {
			continue
		}
		title, _ := vals[0].(string)
		done, _ := vals[1].(string)
		todos = append(todos, domain.Todo{
			ID:    id,
			Title: title,
			Done:  done == "1",
		})
	}

	return todos, nil
}

// Toggle flips the done flag of the todo with the given ID
func (r *RedisStore) Toggle(ctx context.Context, id string) (domain.Todo, error) {
	res, err := toggleScript.Run(ctx, r.client, []string{r.todoKey(id)}).Slice()
	if errors.Is(err, redis.Nil) {
		return domain.Todo{}, domain.ErrTodoNotFound
	}
	if err != nil {
		return domain.Todo{}, fmt.Errorf("failed to toggle todo: %w", err)
	}
	if len(res) != 2 {
		return domain.Todo{}, fmt.Errorf("failed to toggle todo: unexpected reply %v", res)
	}

	title, _ := res[0].(string)
	done, _ := res[1].(string)
	return domain.Todo{
		ID:    id,
		Title: title,
		Done:  done == "1",
	}, nil
}

// Ping checks the Redis connection
func (r *RedisStore) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisStore) todoKey(id string) string {
	return fmt.Sprintf("%s%s", todoKeyPrefix, id)
}

func encodeDone(done bool) string {
	if done {
		return "1"
	}
	return "0"
}
