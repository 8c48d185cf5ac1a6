// Package model defines the core data structures of yt2hoi4.
//
// # Mod
//
// Mod holds a mod's identity and computes every output path of the
// generated package:
//
//	mod := model.NewMod("jazz_radio", "/hoi4/mod", trackPaths)
//	fmt.Println(mod.Root())              // /hoi4/mod/jazz_radio
//	fmt.Println(mod.MusicScriptPath())   // .../music/jazz_radio/jazz_radio_music.txt
//
// # Track
//
// Track captures the one derivation rule everything else depends on:
// base filename and track id from a caller-supplied path.
//
//	track := model.NewTrack("downloads/My Song.ogg")
//	fmt.Println(track.BaseName) // "My Song.ogg"
//	fmt.Println(track.ID)       // "My_Song"
//
// The localisation file, music script, and asset file are all written
// from the same []Track slice, which is how the package guarantees the
// three artifacts never disagree on a track id.
package model
