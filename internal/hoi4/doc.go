// Package hoi4 renders the text artifacts of a Hearts of Iron IV
// music-mod package.
//
// Builder produces each file's content as a plain string with no I/O:
// descriptors, localisation (with its mandatory UTF-8 byte-order
// mark), sprite and layout interface definitions, the station music
// script, and the song asset manifest.
//
// All track-dependent artifacts render from the mod's []model.Track in
// input order. The track id that appears in the localisation file, the
// music script, and the asset file always comes from the same
// model.Track value, so the three can never disagree.
package hoi4
