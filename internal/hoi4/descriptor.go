package hoi4

import (
	"fmt"
	"strings"

	"github.com/NoNameLmao/yt2hoi4/internal/model"
)

// Descriptor renders the in-folder descriptor.mod: the manifest the
// game reads from inside the package.
//
//	name="jazz_radio"
//	supported_version="1.16.5"
func (b *Builder) Descriptor(mod *model.Mod) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("name=%q\n", mod.Name))
	sb.WriteString(fmt.Sprintf("supported_version=%q\n", b.engineVersion))

	return sb.String()
}

// ExternalDescriptor renders the root-level <name>.mod the launcher
// reads. It is a structurally different record from the in-folder
// descriptor: it carries the tag set, the install path relative to the
// game's user directory, and the generator's own release version.
//
//	name="jazz_radio"
//	tags={
//		"Sound"
//	}
//	path="mod/jazz_radio"
//	supported_version="1.16.5"
//	version="1.3.0"
func (b *Builder) ExternalDescriptor(mod *model.Mod) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("name=%q\n", mod.Name))
	sb.WriteString("tags={\n")
	sb.WriteString("\t\"Sound\"\n")
	sb.WriteString("}\n")
	sb.WriteString(fmt.Sprintf("path=%q\n", "mod/"+mod.Name))
	sb.WriteString(fmt.Sprintf("supported_version=%q\n", b.engineVersion))
	sb.WriteString(fmt.Sprintf("version=%q\n", b.toolVersion))

	return sb.String()
}
