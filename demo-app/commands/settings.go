package commands

import (
	"github.com/go-redis/redis"
	"github.com/pkg/errors"
)

// Settings is a family of commands sharing a redis client, registered
// as a receiver from main once the client exists (declarative init
// registration can't work here, the client is config-dependent). The
// facade neither knows nor cares that these persist anything; commands
// are opaque host-application logic.
type Settings struct {
	client *redis.Client
}

func NewSettings(client *redis.Client) *Settings {
	return &Settings{client: client}
}

type SettingKeyArgs struct {
	Key string `json:"key"`
}

type SettingEntryArgs struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type SettingReply struct {
	Key   string `json:"key"`
	Value string `json:"value"`
	Found bool   `json:"found"`
}

func (s *Settings) Get(args SettingKeyArgs) (SettingReply, error) {
	value, err := s.client.Get(args.Key).Result()
	if err == redis.Nil {
		return SettingReply{Key: args.Key}, nil
	}
	if err != nil {
		return SettingReply{}, errors.Wrap(err, "settings: can't read key")
	}
	return SettingReply{Key: args.Key, Value: value, Found: true}, nil
}

func (s *Settings) Put(args SettingEntryArgs) (SettingReply, error) {
	if err := s.client.Set(args.Key, args.Value, 0).Err(); err != nil {
		return SettingReply{}, errors.Wrap(err, "settings: can't write key")
	}
	return SettingReply{Key: args.Key, Value: args.Value, Found: true}, nil
}
