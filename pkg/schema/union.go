package schema

// Union returns a validator accepting values matching any member schema.
// Members are tried in order and the first success wins.
func Union(members ...Schema) Schema { return unionSchema{members: members} }

type unionSchema struct {
	members []Schema
}

func (u unionSchema) decode(value any, path string, lenient bool) (any, Issues) {
	for _, m := range u.members {
		if out, issues := m.decode(value, path, lenient); len(issues) == 0 {
			return out, nil
		}
	}
	return nil, singleIssue(path, CodeInvalidUnion, "no union member matched %s", typeName(value))
}
