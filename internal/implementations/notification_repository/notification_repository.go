package notificationrepository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"healthmate/internal/core/domain/channel"
	e "healthmate/internal/core/domain/errors"
	"healthmate/internal/core/domain/kv"
	"healthmate/internal/core/domain/notification"
	"healthmate/internal/core/domain/user"
)

func permissionKey(namespace string, userID user.ID) string {
	return fmt.Sprintf("%s_%s_notification_permission", namespace, userID)
}

func channelKey(namespace string, userID user.ID) string {
	return fmt.Sprintf("%s_%s_notification_channel", namespace, userID)
}

type Permissions struct {
	kv        kv.Store
	namespace string
}

func NewPermissions(store kv.Store, namespace string) *Permissions {
	if store == nil {
		panic(e.NewNilArgumentError("store"))
	}
	if namespace == "" {
		panic(e.NewEmptyArgumentError("namespace"))
	}
	return &Permissions{kv: store, namespace: namespace}
}

func (r *Permissions) Get(ctx context.Context, userID user.ID) (notification.Permission, error) {
	data, err := r.kv.Get(ctx, permissionKey(r.namespace, userID))
	if errors.Is(err, kv.ErrKeyNotFound) {
		return notification.PermissionDefault, nil
	}
	if err != nil {
		return notification.PermissionDefault, err
	}
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return notification.PermissionDefault, err
	}
	return notification.ParsePermission(value)
}

func (r *Permissions) Set(ctx context.Context, userID user.ID, p notification.Permission) error {
	data, err := json.Marshal(p.String())
	if err != nil {
		return err
	}
	return r.kv.Set(ctx, permissionKey(r.namespace, userID), data)
}

type Channels struct {
	kv        kv.Store
	namespace string
}

func NewChannels(store kv.Store, namespace string) *Channels {
	if store == nil {
		panic(e.NewNilArgumentError("store"))
	}
	if namespace == "" {
		panic(e.NewEmptyArgumentError("namespace"))
	}
	return &Channels{kv: store, namespace: namespace}
}

func (r *Channels) Get(ctx context.Context, userID user.ID) (channel.Settings, error) {
	data, err := r.kv.Get(ctx, channelKey(r.namespace, userID))
	if errors.Is(err, kv.ErrKeyNotFound) {
		return nil, channel.ErrChannelNotSet
	}
	if err != nil {
		return nil, err
	}
	return channel.Unmarshal(data)
}

func (r *Channels) Set(ctx context.Context, userID user.ID, settings channel.Settings) error {
	data, err := channel.Marshal(settings)
	if err != nil {
		return err
	}
	return r.kv.Set(ctx, channelKey(r.namespace, userID), data)
}
