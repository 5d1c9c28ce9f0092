package channel

type Type struct {
	v string
}

func (t Type) String() string {
	return t.v
}

var (
	Unknown  = Type{}
	TELEGRAM = Type{v: "telegram"}
	EMAIL    = Type{v: "email"}
)

func ParseType(value string) (Type, error) {
	switch value {
	case TELEGRAM.v:
		return TELEGRAM, nil
	case EMAIL.v:
		return EMAIL, nil
	default:
		return Unknown, ErrParseType
	}
}
