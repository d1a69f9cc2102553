package uri

import (
	"braces.dev/errtrace"
	"github.com/ghettovoice/abnf"

	"github.com/ghettovoice/rfc3986/grammar"
	"github.com/ghettovoice/rfc3986/internal/errorutil"
)

func newNodeNotFoundErr(key, parent string) error {
	return errorutil.NewWrapperError(ErrNodeNotFound, "get node %q from node %q", key, parent) //errtrace:skip
}

func newNode(key, value string, children ...*abnf.Node) *abnf.Node {
	return &abnf.Node{Key: key, Value: []byte(value), Children: children}
}

// ABNF returns the URI as a tree of ABNF nodes keyed by RFC 3986 rule names:
//
//	URI | relative-ref
//	├── scheme
//	├── hier-part | relative-part
//	│   ├── authority
//	│   │   ├── userinfo
//	│   │   ├── host
//	│   │   │   └── IP-literal (IPv6address | IPvFuture) | IPv4address | reg-name
//	│   │   └── port
//	│   └── path-abempty | path-absolute | path-rootless | path-noscheme | path-empty
//	├── query
//	└── fragment
//
// Absent components have no node. Node values hold the component text without delimiters,
// except the root and the part nodes, which hold the text they cover.
func (u *URI) ABNF() *abnf.Node {
	if u == nil {
		return nil
	}

	rootKey, partKey := grammar.KindRelativeRef.String(), grammar.KindRelativePart.String()
	if u.Scheme != "" {
		rootKey, partKey = grammar.KindURI.String(), grammar.KindHierPart.String()
	}

	root := newNode(rootKey, u.String())
	if u.Scheme != "" {
		root.Children = append(root.Children, newNode(grammar.KindScheme.String(), u.Scheme))
	}

	part := newNode(partKey, "")
	if u.HasAuthority {
		auth := newNode(grammar.KindAuthority.String(), u.Authority())
		if u.HasUserinfo {
			auth.Children = append(auth.Children, newNode(grammar.KindUserinfo.String(), u.Userinfo))
		}
		auth.Children = append(auth.Children, u.hostNode())
		if u.HasPort {
			auth.Children = append(auth.Children, newNode(grammar.KindPort.String(), u.Port))
		}
		part.Children = append(part.Children, auth)
		part.Value = append(part.Value, "//"...)
		part.Value = append(part.Value, auth.Value...)
	}
	part.Children = append(part.Children, newNode(u.PathKind.String(), u.Path))
	part.Value = append(part.Value, u.Path...)
	root.Children = append(root.Children, part)

	if u.HasQuery {
		root.Children = append(root.Children, newNode(grammar.KindQuery.String(), u.Query))
	}
	if u.HasFragment {
		root.Children = append(root.Children, newNode(grammar.KindFragment.String(), u.Fragment))
	}
	return root
}

func (u *URI) hostNode() *abnf.Node {
	host := newNode(grammar.KindHost.String(), u.Host)
	switch u.HostKind {
	case HostIPLiteral, HostIPvFuture:
		inner := ""
		if len(u.Host) >= 2 {
			inner = u.Host[1 : len(u.Host)-1]
		}
		host.Children = abnf.Nodes{
			newNode(grammar.KindIPLiteral.String(), u.Host, newNode(u.HostKind.String(), inner)),
		}
	case HostIPv4, HostRegName:
		host.Children = abnf.Nodes{newNode(u.HostKind.String(), u.Host)}
	}
	return host
}

// FromABNF rebuilds a URI from a node tree returned by [URI.ABNF].
// The root node must be "URI", "absolute-URI" or "relative-ref".
// The reassembled text is parsed again, so spans and kinds are recomputed
// and an inconsistent tree results in an error.
func FromABNF(node *abnf.Node) (*URI, error) {
	if node == nil {
		return nil, errtrace.Wrap(ErrNodeNotFound)
	}

	var (
		prod    grammar.Production
		partKey string
	)
	switch node.Key {
	case grammar.KindURI.String():
		prod, partKey = grammar.URI, grammar.KindHierPart.String()
	case grammar.KindAbsoluteURI.String():
		prod, partKey = grammar.AbsoluteURI, grammar.KindHierPart.String()
	case grammar.KindRelativeRef.String():
		prod, partKey = grammar.RelativeRef, grammar.KindRelativePart.String()
	default:
		return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrNodeNotFound, "unexpected root node %q", node.Key))
	}

	u := new(URI)
	if partKey == grammar.KindHierPart.String() {
		n, ok := node.GetNode(grammar.KindScheme.String())
		if !ok {
			return nil, errtrace.Wrap(newNodeNotFoundErr(grammar.KindScheme.String(), node.Key))
		}
		u.Scheme = n.String()
	}

	part, ok := node.GetNode(partKey)
	if !ok {
		return nil, errtrace.Wrap(newNodeNotFoundErr(partKey, node.Key))
	}
	if auth, ok := part.GetNode(grammar.KindAuthority.String()); ok {
		u.HasAuthority = true
		if n, ok := auth.GetNode(grammar.KindUserinfo.String()); ok {
			u.HasUserinfo, u.Userinfo = true, n.String()
		}
		host, ok := auth.GetNode(grammar.KindHost.String())
		if !ok {
			return nil, errtrace.Wrap(newNodeNotFoundErr(grammar.KindHost.String(), auth.Key))
		}
		u.Host = host.String()
		if n, ok := auth.GetNode(grammar.KindPort.String()); ok {
			u.HasPort, u.Port = true, n.String()
		}
	}
	for _, k := range pathKindKinds {
		if n, ok := part.GetNode(k.String()); ok {
			u.Path = n.String()
			break
		}
	}
	if n, ok := node.GetNode(grammar.KindQuery.String()); ok {
		u.HasQuery, u.Query = true, n.String()
	}
	if n, ok := node.GetNode(grammar.KindFragment.String()); ok {
		u.HasFragment, u.Fragment = true, n.String()
	}

	return errtrace.Wrap2(parse(u.String(), prod))
}
