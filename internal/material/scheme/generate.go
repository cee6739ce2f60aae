package scheme

import (
	"fmt"

	"github.com/jmylchreest/tonal/internal/colour"
	"github.com/jmylchreest/tonal/internal/material/palette"
)

// source palette of a role
type paletteKey int

const (
	keyPrimary paletteKey = iota
	keySecondary
	keyTertiary
	keyNeutral
	keyNeutralVariant
	keyError
)

// toneSpec is the palette and tone a role is drawn from.
type toneSpec struct {
	palette paletteKey
	tone    int
}

type toneTable [NumRoles]toneSpec

var lightTones = toneTable{
	Primary:               {keyPrimary, 40},
	OnPrimary:             {keyPrimary, 100},
	PrimaryContainer:      {keyPrimary, 90},
	OnPrimaryContainer:    {keyPrimary, 10},
	InversePrimary:        {keyPrimary, 80},
	PrimaryFixed:          {keyPrimary, 90},
	PrimaryFixedDim:       {keyPrimary, 80},
	OnPrimaryFixed:        {keyPrimary, 10},
	OnPrimaryFixedVariant: {keyPrimary, 30},

	Secondary:               {keySecondary, 40},
	OnSecondary:             {keySecondary, 100},
	SecondaryContainer:      {keySecondary, 90},
	OnSecondaryContainer:    {keySecondary, 10},
	SecondaryFixed:          {keySecondary, 90},
	SecondaryFixedDim:       {keySecondary, 80},
	OnSecondaryFixed:        {keySecondary, 10},
	OnSecondaryFixedVariant: {keySecondary, 30},

	Tertiary:               {keyTertiary, 40},
	OnTertiary:             {keyTertiary, 100},
	TertiaryContainer:      {keyTertiary, 90},
	OnTertiaryContainer:    {keyTertiary, 10},
	TertiaryFixed:          {keyTertiary, 90},
	TertiaryFixedDim:       {keyTertiary, 80},
	OnTertiaryFixed:        {keyTertiary, 10},
	OnTertiaryFixedVariant: {keyTertiary, 30},

	Error:            {keyError, 40},
	OnError:          {keyError, 100},
	ErrorContainer:   {keyError, 90},
	OnErrorContainer: {keyError, 10},

	SurfaceDim:              {keyNeutral, 87},
	Surface:                 {keyNeutral, 98},
	SurfaceBright:           {keyNeutral, 98},
	SurfaceContainerLowest:  {keyNeutral, 100},
	SurfaceContainerLow:     {keyNeutral, 96},
	SurfaceContainer:        {keyNeutral, 94},
	SurfaceContainerHigh:    {keyNeutral, 92},
	SurfaceContainerHighest: {keyNeutral, 90},
	OnSurface:               {keyNeutral, 10},
	OnSurfaceVariant:        {keyNeutralVariant, 30},
	Outline:                 {keyNeutralVariant, 50},
	OutlineVariant:          {keyNeutralVariant, 80},
	InverseSurface:          {keyNeutral, 20},
	InverseOnSurface:        {keyNeutral, 95},
	SurfaceVariant:          {keyNeutralVariant, 90},
	SurfaceTint:             {keyPrimary, 40},
	Background:              {keyNeutral, 98},
	OnBackground:            {keyNeutral, 10},
	Shadow:                  {keyNeutral, 0},
	Scrim:                   {keyNeutral, 0},
}

var darkTones = toneTable{
	Primary:               {keyPrimary, 80},
	OnPrimary:             {keyPrimary, 20},
	PrimaryContainer:      {keyPrimary, 30},
	OnPrimaryContainer:    {keyPrimary, 90},
	InversePrimary:        {keyPrimary, 40},
	PrimaryFixed:          {keyPrimary, 90},
	PrimaryFixedDim:       {keyPrimary, 80},
	OnPrimaryFixed:        {keyPrimary, 10},
	OnPrimaryFixedVariant: {keyPrimary, 30},

	Secondary:               {keySecondary, 80},
	OnSecondary:             {keySecondary, 20},
	SecondaryContainer:      {keySecondary, 30},
	OnSecondaryContainer:    {keySecondary, 90},
	SecondaryFixed:          {keySecondary, 90},
	SecondaryFixedDim:       {keySecondary, 80},
	OnSecondaryFixed:        {keySecondary, 10},
	OnSecondaryFixedVariant: {keySecondary, 30},

	Tertiary:               {keyTertiary, 80},
	OnTertiary:             {keyTertiary, 20},
	TertiaryContainer:      {keyTertiary, 30},
	OnTertiaryContainer:    {keyTertiary, 90},
	TertiaryFixed:          {keyTertiary, 90},
	TertiaryFixedDim:       {keyTertiary, 80},
	OnTertiaryFixed:        {keyTertiary, 10},
	OnTertiaryFixedVariant: {keyTertiary, 30},

	Error:            {keyError, 80},
	OnError:          {keyError, 20},
	ErrorContainer:   {keyError, 30},
	OnErrorContainer: {keyError, 90},

	SurfaceDim:              {keyNeutral, 6},
	Surface:                 {keyNeutral, 6},
	SurfaceBright:           {keyNeutral, 24},
	SurfaceContainerLowest:  {keyNeutral, 4},
	SurfaceContainerLow:     {keyNeutral, 10},
	SurfaceContainer:        {keyNeutral, 12},
	SurfaceContainerHigh:    {keyNeutral, 17},
	SurfaceContainerHighest: {keyNeutral, 22},
	OnSurface:               {keyNeutral, 90},
	OnSurfaceVariant:        {keyNeutralVariant, 80},
	Outline:                 {keyNeutralVariant, 60},
	OutlineVariant:          {keyNeutralVariant, 30},
	InverseSurface:          {keyNeutral, 90},
	InverseOnSurface:        {keyNeutral, 20},
	SurfaceVariant:          {keyNeutralVariant, 30},
	SurfaceTint:             {keyPrimary, 80},
	Background:              {keyNeutral, 6},
	OnBackground:            {keyNeutral, 90},
	Shadow:                  {keyNeutral, 0},
	Scrim:                   {keyNeutral, 0},
}

// amoledTones is the dark table with the neutral surfaces pulled down to
// pure black and the container ladder compressed towards it.
var amoledTones = func() toneTable {
	t := darkTones
	t[Background] = toneSpec{keyNeutral, 0}
	t[Surface] = toneSpec{keyNeutral, 0}
	t[SurfaceDim] = toneSpec{keyNeutral, 0}
	t[SurfaceBright] = toneSpec{keyNeutral, 18}
	t[SurfaceContainerLowest] = toneSpec{keyNeutral, 0}
	t[SurfaceContainerLow] = toneSpec{keyNeutral, 4}
	t[SurfaceContainer] = toneSpec{keyNeutral, 6}
	t[SurfaceContainerHigh] = toneSpec{keyNeutral, 10}
	t[SurfaceContainerHighest] = toneSpec{keyNeutral, 14}
	return t
}()

var toneTables = map[Mode]*toneTable{
	ModeAmoled: &amoledTones,
	ModeDark:   &darkTones,
	ModeLight:  &lightTones,
}

// Generate expands source into a complete scheme. The result depends only
// on its arguments. An unknown mode or variant is a programming error and
// panics; callers validate names with ParseMode and palette.ParseVariant.
func Generate(source colour.ARGB, variant palette.Variant, mode Mode) Scheme {
	table, ok := toneTables[mode]
	if !ok {
		panic(fmt.Sprintf("scheme: unknown mode %q", mode))
	}

	core := palette.NewCorePalette(source, variant)
	palettes := [...]*palette.TonalPalette{
		keyPrimary:        core.Primary,
		keySecondary:      core.Secondary,
		keyTertiary:       core.Tertiary,
		keyNeutral:        core.Neutral,
		keyNeutralVariant: core.NeutralVariant,
		keyError:          core.Error,
	}

	var s Scheme
	for r, spec := range table {
		s.colors[r] = palettes[spec.palette].Tone(spec.tone)
	}
	return s
}
