package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-arcade/internal/progress"
	"github.com/vovakirdan/neon-arcade/internal/shop"
)

var shopCmd = &cobra.Command{
	Use:   "shop",
	Short: "Browse, buy and equip cosmetics and themes",
	Long: `Spend coins on cursors, name colors, badge slots, badges, titles
and color themes. 'arcade menu' has the same shop as a screen.

Examples:
  arcade shop list
  arcade shop buy color-gold
  arcade shop equip color-gold
  arcade shop themes
  arcade shop theme amber`,
}

var shopListCmd = &cobra.Command{
	Use:   "list",
	Short: "List items by category",
	Args:  cobra.NoArgs,
	Run:   runShopList,
}

var shopBuyCmd = &cobra.Command{
	Use:   "buy <item-id>",
	Short: "Buy an item",
	Args:  cobra.ExactArgs(1),
	Run:   runShopBuy,
}

var shopEquipCmd = &cobra.Command{
	Use:   "equip <item-id>",
	Short: "Equip an owned item; badges toggle",
	Args:  cobra.ExactArgs(1),
	Run:   runShopEquip,
}

var shopUnequipTitleCmd = &cobra.Command{
	Use:   "unequip-title",
	Short: "Stop displaying a title",
	Args:  cobra.NoArgs,
	Run:   runShopUnequipTitle,
}

var shopThemesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List color themes",
	Args:  cobra.NoArgs,
	Run:   runShopThemes,
}

var shopThemeCmd = &cobra.Command{
	Use:   "theme <name>",
	Short: "Unlock if needed, then select a theme",
	Args:  cobra.ExactArgs(1),
	Run:   runShopTheme,
}

func init() {
	shopCmd.AddCommand(shopListCmd)
	shopCmd.AddCommand(shopBuyCmd)
	shopCmd.AddCommand(shopEquipCmd)
	shopCmd.AddCommand(shopUnequipTitleCmd)
	shopCmd.AddCommand(shopThemesCmd)
	shopCmd.AddCommand(shopThemeCmd)
}

var categoryNames = map[progress.Category]string{
	progress.CategoryCursor:    "Cursors",
	progress.CategoryNameColor: "Name Colors",
	progress.CategoryBadgeSlot: "Badge Slots",
	progress.CategoryBadge:     "Badges",
	progress.CategoryTitle:     "Titles",
}

func runShopList(cmd *cobra.Command, _ []string) {
	e := openEnv(cmd)
	defer e.Close()
	s := shop.New(e.store)

	fmt.Printf("◎ %d coins\n", e.store.Coins())
	for _, c := range shop.Categories {
		fmt.Println()
		fmt.Println(categoryNames[c])
		for _, it := range shop.ByCategory(c) {
			status := fmt.Sprintf("%d coins", it.Price)
			switch {
			case s.Equipped(it):
				status = "equipped"
			case s.Owned(it):
				status = "owned"
			}
			fmt.Printf("  %-22s  %-16s  %-10s  %s\n", it.ID, it.Name, status, it.Description)
		}
	}

	l := s.Loadout()
	fmt.Println()
	fmt.Printf("Loadout: cursor %s, name %s, badges %d/%d", l.Cursor, l.NameColor, len(l.Badges), l.Slots)
	if l.Title != "" {
		fmt.Printf(", title %q", l.Title)
	}
	fmt.Println()
}

func runShopBuy(cmd *cobra.Command, args []string) {
	e := openEnv(cmd)
	defer e.Close()
	s := shop.New(e.store)

	it, ok := shop.Lookup(args[0])
	if !ok {
		e.fail("unknown item %q, run 'arcade shop list'", args[0])
	}
	if s.Owned(it) {
		fmt.Printf("You already own %s.\n", it.Name)
		return
	}
	if !s.Purchase(it.ID, it.Price) {
		if need := s.Shortfall(it.Price); need > 0 {
			e.fail("need %d more coins for %s", need, it.Name)
		}
		e.fail("could not buy %s", it.Name)
	}
	fmt.Printf("Bought %s for %d coins. ◎ %d left\n", it.Name, it.Price, e.store.Coins())
}

func runShopEquip(cmd *cobra.Command, args []string) {
	e := openEnv(cmd)
	defer e.Close()
	s := shop.New(e.store)

	it, ok := shop.Lookup(args[0])
	if !ok {
		e.fail("unknown item %q, run 'arcade shop list'", args[0])
	}
	if err := s.Equip(it.ID); err != nil {
		switch {
		case errors.Is(err, shop.ErrNotOwned):
			e.fail("you don't own %s yet", it.Name)
		case errors.Is(err, shop.ErrNoBadgeSlot):
			e.fail("all badge slots are in use, unequip a badge or buy a slot")
		case errors.Is(err, shop.ErrNotEquipable):
			e.fail("%s cannot be equipped", it.Name)
		}
		e.fail("%v", err)
	}

	if it.Category == progress.CategoryBadge && !s.Equipped(it) {
		fmt.Printf("Removed %s.\n", it.Name)
		return
	}
	fmt.Printf("Equipped %s.\n", it.Name)
}

func runShopUnequipTitle(cmd *cobra.Command, _ []string) {
	e := openEnv(cmd)
	defer e.Close()

	shop.New(e.store).UnequipTitle()
	fmt.Println("Title removed.")
}

func runShopThemes(cmd *cobra.Command, _ []string) {
	e := openEnv(cmd)
	defer e.Close()
	s := shop.New(e.store)

	active := s.ActiveTheme().Name
	fmt.Printf("◎ %d coins\n\n", e.store.Coins())
	for _, t := range shop.Themes() {
		status := fmt.Sprintf("%d coins", t.Cost)
		switch {
		case t.Name == active:
			status = "active"
		case s.ThemeUnlocked(t.Name):
			status = "unlocked"
		}
		fmt.Printf("  %-10s  %-16s  %s\n", t.Name, t.Title, status)
	}
}

func runShopTheme(cmd *cobra.Command, args []string) {
	e := openEnv(cmd)
	defer e.Close()
	s := shop.New(e.store)

	t, ok := shop.LookupTheme(args[0])
	if !ok {
		e.fail("unknown theme %q, run 'arcade shop themes'", args[0])
	}
	if !s.ThemeUnlocked(t.Name) {
		if !s.UnlockTheme(t.Name) {
			e.fail("need %d more coins for %s", s.Shortfall(t.Cost), t.Title)
		}
		fmt.Printf("Unlocked %s for %d coins.\n", t.Title, t.Cost)
	}
	if err := s.SelectTheme(t.Name); err != nil {
		e.fail("%v", err)
	}
	fmt.Printf("Theme set to %s.\n", t.Title)
}
