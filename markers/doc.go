/*
Package markers parses the option descriptor block that scanner drivers keep in
a C comment and turns it into normalized core.Option records.

# Block Syntax

	BEGIN SANE_Option_Descriptor

	type group
	  title Scan mode

	type int resolution
	  unit dpi
	  constraint @word_list = ss->dpi_list
	  default 75
	  cap soft_select soft_detect automatic
	  info reload_params

	type string mode[30]
	  constraint {Color|Gray|Lineart}
	  default Color

	type fixed tl-x
	  unit mm
	  constraint (0,215.9,0)
	  default _MIN

	END SANE_Option_Descriptor

Each option starts at a `type` line and runs until the next `type` line or the
end of the block. Every other line is `<keyword> <value>`; keywords are looked
up in a Registry.

# Verbatim Values

A value starting with `@` is copied into the generated code as a C
expression, bypassing the keyword's own parsing:

	desc @SANE_DESC_SCAN_RESOLUTION
	default @s = SANE_VALUE_SCAN_MODE_COLOR

# Basic Usage

	result, err := markers.Parse(r, markers.Options{Logger: log})
	if err != nil {
		return err
	}
	if !result.Found {
		// nothing to generate
	}
*/
package markers
