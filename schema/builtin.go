package schema

import (
	"github.com/signadot/earthedit/ir"
)

var (
	rarities    = []string{"White", "Blue", "Green", "Orange", "Yellow", "Purple", "Red"}
	colors      = []string{"White", "Blue", "Green", "Orange", "Yellow", "Purple", "Red", "Black", "Brown"}
	itemTypes   = []string{"Helmet", "Chestplate", "Ring", "Amulet", "Bag", "Shield", "Material", "Rod", "Tile"}
	damageTypes = []string{"Melee", "Ranged", "Magic"}
)

func str(name, def string, enum ...string) Field {
	return Field{Name: name, Type: ir.StringType, Default: ir.FromString(def), Enum: enum}
}

func num(name string, def float64) Field {
	return Field{Name: name, Type: ir.NumberType, Default: ir.FromNumber(def)}
}

func boolean(name string, def bool) Field {
	return Field{Name: name, Type: ir.BoolType, Default: ir.FromBool(def)}
}

func array(name string, def ...any) Field {
	n, err := ir.FromAny(def)
	if err != nil {
		panic(err)
	}
	return Field{Name: name, Type: ir.ArrayType, Default: n}
}

func object(name string) Field {
	return Field{Name: name, Type: ir.ObjectType, Default: ir.EmptyObject()}
}

func equipment(kind string, fields ...Field) *Preset {
	p := &Preset{Name: kind}
	p.Fields = append(p.Fields, str("name", ""), str("type", kind, itemTypes...))
	p.Fields = append(p.Fields, fields...)
	return p
}

// Builtin returns a registry holding the built in presets and tooltips.
func Builtin() *Registry {
	r := NewRegistry()
	for _, p := range builtinPresets() {
		if err := r.Register(p); err != nil {
			panic(err)
		}
	}
	for k, v := range itemTooltips {
		r.tooltips[k] = v
	}
	return r
}

func builtinPresets() []*Preset {
	return []*Preset{
		{
			Name: "Item",
			Fields: []Field{
				str("name", ""),
				num("damage", 0),
				str("rarity", "White", rarities...),
				str("color", "White", colors...),
				num("durability", 0),
				num("maxDurability", 0),
				boolean("consumable", false),
				boolean("faceMouse", false),
				str("projectile", ""),
				str("useSound", "snd_swing"),
				str("shootSound", ""),
				num("frames", 1),
				num("animationSpeed", 1),
				num("xoffset", 0),
				num("yoffset", 0),
				boolean("castable", false),
				str("tile", "noone"),
				boolean("placeable", false),
				str("type", "Material", itemTypes...),
				str("typeName", ""),
				str("damageType", "Melee", damageTypes...),
				str("damageTypeName", ""),
				num("damageBoost", 0),
				num("healthBoost", 0),
				num("damageModifier", 0),
				num("healthModifier", 0),
				num("speedModifier", 0),
				num("reach", 6),
				num("toolPower", 0),
				num("useSpeed", 60),
				boolean("stackable", true),
				str("tooltip", ""),
				boolean("pickaxe", false),
				boolean("axe", false),
				num("bagSlots", 0),
				str("sprite", "noSprite"),
				str("useSprite", "noSprite"),
				num("cooldown", 0),
				num("maxCooldown", 0),
				num("healthbarScale", 1),
				num("heldAngleOffset", 0),
				str("attackBuffs", "noone"),
				str("consumeBuffs", "noone"),
				boolean("bad", false),
				num("heal", 0),
				num("regen", 0),
				num("regenLength", 0),
				boolean("alive", false),
				boolean("consumeOnUse", false),
				boolean("smeltable", false),
				str("smeltResult", ""),
				num("smeltAmount", 0),
				str("behavior", "noone"),
			},
			Scaffold: []string{
				"name", "damage", "rarity", "durability", "consumable",
				"projectile", "type", "damageType", "damageBoost", "healthBoost",
			},
		},
		{
			Name: "Enemy",
			Fields: []Field{
				str("name", ""),
				boolean("friendly", false),
				num("frames", 0),
				num("hp", 0),
				num("damage", 0),
				boolean("npc", false),
				boolean("swarm", false),
				num("spd", 1),
				num("chaseSpd", 1),
				num("acc", 0.3),
				num("attackSight", 0),
				array("idleAnimation", 0, 5, 20, true),
				array("attackAnimation", 0, 5, 20, true),
				array("shootAnimation", 5, 11, 20, false),
				array("hurtAnimation", 0, 5, 24, true),
				str("aiType", "AngryHornet"),
				array("experience", 0, 0),
				str("lootTable", ""),
			},
		},
		{
			Name: "NPC",
			Fields: []Field{
				str("name", ""),
				str("heldItem", ""),
				str("skin", ""),
				boolean("friendly", true),
				boolean("npc", true),
				boolean("smart", false),
				boolean("isShop", false),
				num("hp", 100),
				num("damage", 3),
				num("spd", 1),
				num("chaseSpd", 2),
				num("acc", 0.3),
				num("attackCooldown", 60),
				array("experience", 0, 0),
			},
		},
		equipment("Chestplate",
			num("healthBoost", 6),
			num("damageBoost", 1),
			str("rarity", "White", rarities...),
			boolean("stackable", false),
			num("xoffset", -2),
		),
		equipment("Helmet",
			num("healthBoost", 3),
			num("damageBoost", 2),
			str("rarity", "White", rarities...),
			boolean("stackable", false),
		),
		equipment("Shield",
			num("healthBoost", 3),
			num("damageBoost", 1),
			str("rarity", "White", rarities...),
			boolean("stackable", false),
			num("xoffset", -2),
		),
		equipment("Amulet",
			num("healthBoost", 5),
			str("rarity", "White", rarities...),
			boolean("stackable", false),
			num("xoffset", -2),
		),
		equipment("Bag",
			num("bagSlots", 4),
			str("rarity", "White", rarities...),
			boolean("stackable", false),
			num("xoffset", -2),
		),
		equipment("Ring",
			num("damageBoost", 2),
			str("rarity", "White", rarities...),
			boolean("stackable", false),
			num("xoffset", -2),
		),
		{
			Name: "Races",
			Fields: []Field{
				str("name", ""),
				str("description", ""),
				str("background", ""),
				str("skin", ""),
				str("difficulty", ""),
				boolean("unlocked", false),
				num("hp", 10),
				array("startingItems", []any{"WoodenAxe", 1}),
				object("attributes"),
			},
			Scaffold: []string{
				"name", "description", "background", "skin", "difficulty",
				"unlocked", "hp", "startingItems",
			},
		},
		{
			Name: "Lifeform",
			Fields: []Field{
				str("id", ""),
				str("species", ""),
				boolean("hostile", false),
				num("hp", 100),
				num("speed", 10),
			},
		},
		{
			Name:   "Empty",
			Fields: []Field{object("Base")},
		},
	}
}
