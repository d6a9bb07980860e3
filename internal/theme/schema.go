package theme

import "github.com/jmylchreest/evoke/internal/colour"

// Source selects which palette a binding reads from.
type Source int

const (
	// Derived is the variant's transformed palette.
	Derived Source = iota
	// Original is the untransformed base palette. Severity indicators use it
	// so errors, warnings and info keep their meaning in every variant.
	Original
)

// String returns the source name.
func (s Source) String() string {
	switch s {
	case Derived:
		return "derived"
	case Original:
		return "original"
	default:
		return "unknown"
	}
}

// Binding assigns one palette role to a list of workbench colour fields.
type Binding struct {
	Role   colour.Role
	Source Source
	Fields []string
}

// TokenRule is a TextMate scope rule. An empty Role leaves the foreground unset.
type TokenRule struct {
	Scopes    []string
	Role      colour.Role
	FontStyle string
}

// SemanticBinding styles one semantic token selector. An empty Role with no
// style flags is invalid.
type SemanticBinding struct {
	Selector  string
	Role      colour.Role
	Bold      bool
	Italic    bool
	Underline bool
}

// Schema is the declarative role to field mapping used by Assemble.
type Schema struct {
	Workbench []Binding
	Tokens    []TokenRule
	Semantic  []SemanticBinding
}

// DefaultSchema returns the VS Code mapping for the evoke theme family.
func DefaultSchema() Schema {
	return Schema{
		Workbench: workbenchBindings,
		Tokens:    tokenRules,
		Semantic:  semanticBindings,
	}
}

// Workbench fields are listed per role, in the order the role first appears
// in the document.
var workbenchBindings = []Binding{
	{
		Role:   colour.RoleGreen,
		Source: Derived,
		Fields: []string{
			"focusBorder",
			"editorLineNumber.activeForeground",
			"editorGutter.addedBackground",
			"list.highlightForeground",
			"list.focusOutline",
			"editorSuggestWidget.highlightForeground",
			"editorSuggestWidget.focusHighlightForeground",
			"editorSuggestWidget.selectedForeground",
			"editorSuggestWidget.selectedIconForeground",
		},
	},
	{
		Role:   colour.RoleLineTransparent,
		Source: Derived,
		Fields: []string{
			"editor.foldBackground",
			"list.activeSelectionBackground",
			"editor.findMatchHighlightBackground",
			"editorSuggestWidget.selectedBackground",
		},
	},
	{
		Role:   colour.RoleBackground,
		Source: Derived,
		Fields: []string{
			"editor.background",
			"editorGroup.emptyBackground",
			"welcomePage.background",
			"panel.background",
			"commandCenter.background",
			"editorGroupHeader.tabsBackground",
			"editorGroupHeader.noTabsBackground",
			"editorGutter.background",
			"menu.background",
			"breadcrumb.background",
			"activityBar.background",
			"tab.inactiveBackground",
			"titleBar.activeBackground",
			"titleBar.inactiveBackground",
			"sideBarSectionHeader.background",
			"sideBar.background",
			"statusBar.background",
			"editorSuggestWidget.background",
			"input.background",
			"editorHoverWidget.background",
			"editorWidget.background",
		},
	},
	{
		Role:   colour.RoleForeground,
		Source: Derived,
		Fields: []string{
			"editor.foreground",
			"button.foreground",
			"button.secondaryForeground",
			"menu.foreground",
			"list.activeSelectionForeground",
			"editorSuggestWidget.foreground",
			"input.foreground",
		},
	},
	{
		Role:   colour.RoleLine,
		Source: Derived,
		Fields: []string{
			"editorLineNumber.foreground",
			"panel.border",
			"editorIndentGuide.activeBackground1",
			"activityBar.border",
			"titleBar.border",
			"sideBar.border",
			"statusBar.border",
			"editorSuggestWidget.border",
			"editorHoverWidget.border",
			"editorWidget.border",
			"editorWidget.resizeBorder",
		},
	},
	{
		Role:   colour.RoleGrayDark,
		Source: Derived,
		Fields: []string{
			"commandCenter.foreground",
			"tree.indentGuidesStroke",
			"button.background",
			"gitDecoration.ignoredResourceForeground",
			"breadcrumb.foreground",
			"tab.activeBorderTop",
			"titleBar.inactiveForeground",
			"sideBarTitle.foreground",
			"statusBar.foreground",
			"list.inactiveFocusBackground",
			"list.deemphasizedForeground",
		},
	},
	{
		Role:   colour.RoleBlack,
		Source: Derived,
		Fields: []string{
			"editorIndentGuide.background1",
			"tab.unfocusedActiveBackground",
			"list.inactiveSelectionBackground",
			"list.hoverBackground",
		},
	},
	{
		Role:   colour.RoleGrayDarker,
		Source: Derived,
		Fields: []string{
			"button.secondaryBackground",
			"menu.selectionBackground",
			"menu.separatorBackground",
			"menu.border",
			"input.border",
		},
	},
	{
		Role:   colour.RoleCyan,
		Source: Derived,
		Fields: []string{
			"gitDecoration.addedResourceForeground",
			"gitDecoration.modifiedResourceForeground",
			"editorGutter.modifiedBackground",
			"editorBracketHighlight.foreground1",
			"editorWidget.foreground",
		},
	},
	{
		Role:   colour.RoleYellow,
		Source: Derived,
		Fields: []string{
			"gitDecoration.untrackedResourceForeground",
		},
	},
	{
		Role:   colour.RoleRed,
		Source: Derived,
		Fields: []string{
			"gitDecoration.deletedResourceForeground",
			"editorGutter.deletedBackground",
			"editorLink.activeForeground",
			"editorLink.foreground",
			"textLink.activeForeground",
			"textLink.foreground",
		},
	},
	{
		Role:   colour.RolePink,
		Source: Derived,
		Fields: []string{
			"gitDecoration.conflictingResourceForeground",
			"editorBracketHighlight.foreground2",
		},
	},
	{
		Role:   colour.RoleCyanHighlight,
		Source: Derived,
		Fields: []string{
			"gitDecoration.submoduleResourceForeground",
		},
	},
	{
		Role:   colour.RoleOrange,
		Source: Derived,
		Fields: []string{
			"editorBracketHighlight.foreground3",
		},
	},
	{
		Role:   colour.RoleGray,
		Source: Derived,
		Fields: []string{
			"breadcrumb.focusForeground",
			"activityBar.foreground",
			"list.focusBackground",
		},
	},
	{
		Role:   colour.RoleGreenDark,
		Source: Derived,
		Fields: []string{
			"activityBarBadge.background",
		},
	},
	{
		Role:   colour.RoleTransparent,
		Source: Derived,
		Fields: []string{
			"tab.border",
		},
	},
	{
		Role:   colour.RoleRedTransparent,
		Source: Derived,
		Fields: []string{
			"editor.findMatchBackground",
			"editorOverviewRuler.findMatchForeground",
		},
	},
	{
		Role:   colour.RoleRed,
		Source: Original,
		Fields: []string{
			"editorError.foreground",
			"list.errorForeground",
			"minimap.errorHighlight",
			"notificationsErrorIcon.foreground",
			"editorOverviewRuler.errorForeground",
		},
	},
	{
		Role:   colour.RoleCyan,
		Source: Original,
		Fields: []string{
			"editorInfo.foreground",
			"list.infoForeground",
			"minimap.infoHighlight",
			"notificationsInfoIcon.foreground",
			"editorOverviewRuler.infoForeground",
		},
	},
	{
		Role:   colour.RoleYellow,
		Source: Original,
		Fields: []string{
			"editorWarning.foreground",
			"list.warningForeground",
			"minimap.warningHighlight",
			"notificationsWarningIcon.foreground",
			"editorOverviewRuler.warningForeground",
		},
	},
	{
		Role:   colour.RoleSelection,
		Source: Derived,
		Fields: []string{
			"editor.selectionBackground",
		},
	},
}

var tokenRules = []TokenRule{
	{
		Scopes: []string{
			"punctuation",
			"meta.bracket",
			"meta.brace",
			"punctuation.section.braces",
			"punctuation.section.brackets",
			"meta.parenthesis",
			"punctuation.section.parens",
		},
		Role: colour.RoleGray,
	},
	{Scopes: []string{"keyword.operator", "storage.type", "meta.link"}, Role: colour.RoleGreen},
	{Scopes: []string{"keyword.operator.namespace"}, Role: colour.RoleGray},
	{Scopes: []string{"comment"}, Role: colour.RoleGrayMid},
	{
		Scopes: []string{
			"entity.name.type",
			"entity.name.class",
			"support.class",
			"entity.name.type.alias",
			"support.type",
			"entity.name.struct",
			"support.type.struct",
			"markup.inline.raw",
			"storage.type",
		},
		Role: colour.RoleOrange,
	},
	{Scopes: []string{"entity.name.tag"}, Role: colour.RoleGreenDark},
	{
		Scopes: []string{
			"meta.tag.attributes",
			"support.type.property-name.toml",
			"support.type.property-name.array",
			"support.type.property-name.table",
		},
		Role: colour.RoleForeground,
	},
	{
		Scopes: []string{
			"support.class.component",
			"entity.other.attribute-name.pseudo-element",
			"entity.other.attribute-name.pseudo-class",
		},
		Role: colour.RoleOrange,
	},
	{
		Scopes: []string{
			"entity.name.function",
			"support.function",
			"variable.function",
			"entity.name.macro",
			"entity.other.attribute-name.class",
			"heading",
		},
		Role:      colour.RoleCyanLight,
		FontStyle: "bold",
	},
	{
		Scopes: []string{
			"variable.other.enummember",
			"constant.numeric",
			"support.constant.property-value",
			"markup.bold",
			"constant.language.json",
			"constant.language.powershell",
		},
		Role: colour.RolePink,
	},
	{Scopes: []string{"keyword", "keyword.operator"}, Role: colour.RoleGreen},
	{Scopes: []string{"support.type.property-name"}, Role: colour.RoleGray},
	{
		Scopes: []string{
			"variable.annotation",
			"meta.decorator",
			"punctuation.definition.string",
			"string.quoted",
			"string.template",
			"entity.name.function.call",
			"support.function.call",
		},
		Role: colour.RoleCyan,
	},
	{Scopes: []string{"comment.documentation"}, Role: colour.RoleGrayMid},
	{Scopes: []string{"storage.modifier"}, FontStyle: "bold"},
}

var semanticBindings = []SemanticBinding{
	{Selector: "comment", Role: colour.RoleGrayMid},
	{Selector: "type", Role: colour.RoleOrange},
	{Selector: "typeAlias", Role: colour.RoleOrange},
	{Selector: "typeParameter", Role: colour.RoleOrange},
	{Selector: "function", Role: colour.RoleCyanLight, Bold: true},
	{Selector: "method", Role: colour.RoleCyanLight},
	{Selector: "const", Role: colour.RolePink},
	{Selector: "enum", Role: colour.RoleOrange},
	{Selector: "enumMember", Role: colour.RolePink},
	{Selector: "string", Role: colour.RoleCyan},
	{Selector: "operator", Role: colour.RoleGreen},
	{Selector: "keyword", Role: colour.RoleGreen},
	{Selector: "macro", Role: colour.RoleCyanLight},
	{Selector: "deriveHelper", Role: colour.RoleOrange},
	{Selector: "decorator", Role: colour.RoleCyan},
	{Selector: "punctuation", Role: colour.RoleGrayDark},
	{Selector: "brace", Role: colour.RoleGrayDark},
	{Selector: "bracket", Role: colour.RoleGray},
	{Selector: "parenthesis", Role: colour.RoleGray},
	{Selector: "number", Role: colour.RolePink},
	{Selector: "struct", Role: colour.RoleOrange},
	{Selector: "variable.defaultLibrary", Underline: true},
	{Selector: "*.documentation", Role: colour.RoleGrayDark},
	{Selector: "*.constant", Role: colour.RolePink},
	{Selector: "*.callable", Role: colour.RoleCyan},
	{Selector: "*.modification", Bold: true},
	{Selector: "*.readonly", Bold: true},
	{Selector: "label", Role: colour.RolePink},
}
