package response

import "healthmate/internal/core/domain/notification"

type Permission struct {
	State string `json:"state"`
}

func (p *Permission) FromDomainType(permission notification.Permission) {
	p.State = permission.String()
}
