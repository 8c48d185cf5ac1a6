package hoi4

import (
	"fmt"
	"strings"

	"github.com/NoNameLmao/yt2hoi4/internal/model"
)

// SpriteDefinitions renders the .gfx file declaring the station's
// faceplate sprite. The sprite name GFX_<name>_faceplate is what the
// layout file references, and the texture path points at the DDS the
// generator copies in during the interface step.
func (b *Builder) SpriteDefinitions(mod *model.Mod) string {
	var sb strings.Builder

	sb.WriteString("spriteTypes = {\n")
	sb.WriteString("\tspriteType = {\n")
	sb.WriteString(fmt.Sprintf("\t\tname = \"GFX_%s_faceplate\"\n", mod.Name))
	sb.WriteString(fmt.Sprintf("\t\ttexturefile = \"gfx/%s_faceplate.dds\"\n", mod.Name))
	sb.WriteString("\t\tnoOfFrames = 1\n")
	sb.WriteString("\t}\n")
	sb.WriteString("}\n")

	return sb.String()
}

// PlayerLayout renders the .gui playback-widget definition. The layout
// is a fixed template - positions, fonts, and button wiring never
// change - parameterized only by the mod name.
func (b *Builder) PlayerLayout(mod *model.Mod) string {
	return strings.ReplaceAll(playerLayoutTemplate, namePlaceholder, mod.Name)
}

const namePlaceholder = "@NAME@"

// playerLayoutTemplate is the stock music-player widget: faceplate
// background, track name with elapsed/duration labels, transport
// buttons, a volume slider, and the station-selection entry.
const playerLayoutTemplate = `guiTypes = {

	containerWindowType = {
		name = "@NAME@_faceplate"
		position = { x = 0 y = 0 }
		size = { width = 590 height = 46 }

		iconType = {
			name = "@NAME@_faceplate_bg"
			spriteType = "GFX_@NAME@_faceplate"
			position = { x = 0 y = 0 }
			alwaystransparent = yes
		}

		instantTextBoxType = {
			name = "track_name"
			position = { x = 72 y = 20 }
			font = "hoi4_typewriter12"
			text = "@NAME@"
			maxWidth = 450
			maxHeight = 25
			format = center
		}

		instantTextBoxType = {
			name = "track_elapsed"
			position = { x = 124 y = 30 }
			font = "hoi4_typewriter12"
			text = "00:00"
			maxWidth = 50
			maxHeight = 25
			format = center
		}

		instantTextBoxType = {
			name = "track_duration"
			position = { x = 420 y = 30 }
			font = "hoi4_typewriter12"
			text = "00:00"
			maxWidth = 50
			maxHeight = 25
			format = center
		}

		buttonType = {
			name = "prev_button"
			position = { x = 220 y = 20 }
			quadTextureSprite = "GFX_musicplayer_previous_button"
			buttonFont = "Main_14_black"
			Orientation = "LOWER_LEFT"
			clicksound = click_close
			pdx_tooltip = "MUSICPLAYER_PREV"
		}

		buttonType = {
			name = "play_button"
			position = { x = 263 y = 20 }
			quadTextureSprite = "GFX_musicplayer_play_pause_button"
			buttonFont = "Main_14_black"
			Orientation = "LOWER_LEFT"
			clicksound = click_close
		}

		buttonType = {
			name = "next_button"
			position = { x = 336 y = 20 }
			quadTextureSprite = "GFX_musicplayer_next_button"
			buttonFont = "Main_14_black"
			Orientation = "LOWER_LEFT"
			clicksound = click_close
			pdx_tooltip = "MUSICPLAYER_NEXT"
		}

		extendedScrollbarType = {
			name = "volume_slider"
			position = { x = 100 y = 45 }
			size = { width = 75 height = 18 }
			tileSize = { width = 12 height = 12 }
			maxValue = 100
			minValue = 0
			stepSize = 1
			startValue = 50
			horizontal = yes
			orientation = lower_left
			origo = lower_left
			setTrackFrameOnChange = yes

			slider = {
				name = "Slider"
				quadTextureSprite = "GFX_scroll_drager"
				position = { x = 0 y = 1 }
				pdx_tooltip = "MUSICPLAYER_ADJUST_VOL"
			}

			track = {
				name = "Track"
				quadTextureSprite = "GFX_volume_track"
				position = { x = 0 y = 3 }
				alwaystransparent = yes
				pdx_tooltip = "MUSICPLAYER_ADJUST_VOL"
			}
		}
	}

	containerWindowType = {
		name = "@NAME@_stations_entry"
		size = { width = 162 height = 130 }

		checkBoxType = {
			name = "select_station_button"
			position = { x = 0 y = 0 }
			quadTextureSprite = "GFX_@NAME@_faceplate"
			clicksound = decisions_ui_button
		}
	}
}
`
