package pricing

import (
	"strings"

	"facility-booking/internal/pkg/errs"
)

var ErrInvalidRoleTag = errs.New("invalid role tag")

type tagKind uint8

const (
	kindAdmin tagKind = iota + 1
	kindStandardUser
	kindCustomRole
)

const (
	adminTagText        = "system:admin"
	standardUserTagText = "system:user"
	customRolePrefix    = "role:"
)

// RoleTag names who a pricing rule is for. Custom role ids live in their own namespace,
// so a custom role called "admin" can never be mistaken for the administrator tag.
type RoleTag struct {
	kind tagKind
	id   string
}

func AdminTag() RoleTag        { return RoleTag{kind: kindAdmin} }
func StandardUserTag() RoleTag { return RoleTag{kind: kindStandardUser} }

func CustomRoleTag(id string) RoleTag {
	return RoleTag{kind: kindCustomRole, id: id}
}

// ParseRoleTag reads the stored form produced by String.
func ParseRoleTag(s string) (RoleTag, error) {
	switch {
	case s == adminTagText:
		return AdminTag(), nil
	case s == standardUserTagText:
		return StandardUserTag(), nil
	case strings.HasPrefix(s, customRolePrefix) && len(s) > len(customRolePrefix):
		return CustomRoleTag(strings.TrimPrefix(s, customRolePrefix)), nil
	default:
		return RoleTag{}, errs.Wrapf(ErrInvalidRoleTag, "%q", s)
	}
}

func ParseRoleTags(ss []string) ([]RoleTag, error) {
	tags := make([]RoleTag, 0, len(ss))
	for _, s := range ss {
		t, err := ParseRoleTag(s)
		if err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}
	return tags, nil
}

func (t RoleTag) String() string {
	switch t.kind {
	case kindAdmin:
		return adminTagText
	case kindStandardUser:
		return standardUserTagText
	case kindCustomRole:
		return customRolePrefix + t.id
	default:
		return ""
	}
}

func (t RoleTag) IsZero() bool { return t.kind == 0 }

// CustomRoleID returns the id of a custom role tag.
func (t RoleTag) CustomRoleID() (string, bool) {
	return t.id, t.kind == kindCustomRole
}

type SystemRole string

const (
	SystemRoleAdmin SystemRole = "admin"
	SystemRoleUser  SystemRole = "user"
)

// RoleProfile is the caller's resolved standing. It is supplied by the identity layer.
type RoleProfile struct {
	IsAdmin      bool
	CustomRoleID *string
	SystemRole   SystemRole
	IsMember     bool
}

func (p RoleProfile) hasCustomRole() bool {
	return p.CustomRoleID != nil && *p.CustomRoleID != ""
}

// Candidates lists the tags to look up, most specific first. The default rule is
// tried after all of them.
func (p RoleProfile) Candidates() []RoleTag {
	var tags []RoleTag
	if p.IsAdmin {
		tags = append(tags, AdminTag())
	}
	if p.hasCustomRole() {
		tags = append(tags, CustomRoleTag(*p.CustomRoleID))
	}
	if p.SystemRole == SystemRoleUser && !p.hasCustomRole() {
		tags = append(tags, StandardUserTag())
	}
	return tags
}

// PrimaryTag is the first candidate. ok is false for a profile that only the default rule can serve.
func (p RoleProfile) PrimaryTag() (RoleTag, bool) {
	c := p.Candidates()
	if len(c) == 0 {
		return RoleTag{}, false
	}
	return c[0], true
}
