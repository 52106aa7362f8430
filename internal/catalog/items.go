package catalog

// Item types as reported in inventory records and dropped-item entities.
const (
	ItemAcaciaBoat           ItemType = "acacia_boat"
	ItemAcaciaDoor           ItemType = "acacia_door"
	ItemApple                ItemType = "apple"
	ItemArmorStand           ItemType = "armor_stand"
	ItemArrow                ItemType = "arrow"
	ItemBakedPotato          ItemType = "baked_potato"
	ItemBanner               ItemType = "banner"
	ItemBed                  ItemType = "bed"
	ItemBeef                 ItemType = "beef"
	ItemBeetroot             ItemType = "beetroot"
	ItemBeetrootSeeds        ItemType = "beetroot_seeds"
	ItemBeetrootSoup         ItemType = "beetroot_soup"
	ItemBirchBoat            ItemType = "birch_boat"
	ItemBirchDoor            ItemType = "birch_door"
	ItemBlazePowder          ItemType = "blaze_powder"
	ItemBlazeRod             ItemType = "blaze_rod"
	ItemBoat                 ItemType = "boat"
	ItemBone                 ItemType = "bone"
	ItemBook                 ItemType = "book"
	ItemBow                  ItemType = "bow"
	ItemBowl                 ItemType = "bowl"
	ItemBread                ItemType = "bread"
	ItemBrewingStand         ItemType = "brewing_stand"
	ItemBrick                ItemType = "brick"
	ItemBucket               ItemType = "bucket"
	ItemCake                 ItemType = "cake"
	ItemCarrot               ItemType = "carrot"
	ItemCarrotOnAStick       ItemType = "carrot_on_a_stick"
	ItemCauldron             ItemType = "cauldron"
	ItemChainmailBoots       ItemType = "chainmail_boots"
	ItemChainmailChestplate  ItemType = "chainmail_chestplate"
	ItemChainmailHelmet      ItemType = "chainmail_helmet"
	ItemChainmailLeggings    ItemType = "chainmail_leggings"
	ItemChestMinecart        ItemType = "chest_minecart"
	ItemChicken              ItemType = "chicken"
	ItemChorusFruit          ItemType = "chorus_fruit"
	ItemChorusFruitPopped    ItemType = "chorus_fruit_popped"
	ItemClayBall             ItemType = "clay_ball"
	ItemClock                ItemType = "clock"
	ItemCoal                 ItemType = "coal"
	ItemCommandBlockMinecart ItemType = "command_block_minecart"
	ItemComparator           ItemType = "comparator"
	ItemCompass              ItemType = "compass"
	ItemCookedBeef           ItemType = "cooked_beef"
	ItemCookedChicken        ItemType = "cooked_chicken"
	ItemCookedFish           ItemType = "cooked_fish"
	ItemCookedMutton         ItemType = "cooked_mutton"
	ItemCookedPorkchop       ItemType = "cooked_porkchop"
	ItemCookedRabbit         ItemType = "cooked_rabbit"
	ItemCookie               ItemType = "cookie"
	ItemDarkOakBoat          ItemType = "dark_oak_boat"
	ItemDarkOakDoor          ItemType = "dark_oak_door"
	ItemDiamond              ItemType = "diamond"
	ItemDiamondAxe           ItemType = "diamond_axe"
	ItemDiamondBoots         ItemType = "diamond_boots"
	ItemDiamondChestplate    ItemType = "diamond_chestplate"
	ItemDiamondHelmet        ItemType = "diamond_helmet"
	ItemDiamondHoe           ItemType = "diamond_hoe"
	ItemDiamondHorseArmor    ItemType = "diamond_horse_armor"
	ItemDiamondLeggings      ItemType = "diamond_leggings"
	ItemDiamondPickaxe       ItemType = "diamond_pickaxe"
	ItemDiamondShovel        ItemType = "diamond_shovel"
	ItemDiamondSword         ItemType = "diamond_sword"
	ItemDragonBreath         ItemType = "dragon_breath"
	ItemDye                  ItemType = "dye"
	ItemEgg                  ItemType = "egg"
	ItemElytra               ItemType = "elytra"
	ItemEmerald              ItemType = "emerald"
	ItemEnchantedBook        ItemType = "enchanted_book"
	ItemEnderEye             ItemType = "ender_eye"
	ItemEnderPearl           ItemType = "ender_pearl"
	ItemExperienceBottle     ItemType = "experience_bottle"
	ItemFeather              ItemType = "feather"
	ItemFermentedSpiderEye   ItemType = "fermented_spider_eye"
	ItemFilledMap            ItemType = "filled_map"
	ItemFireCharge           ItemType = "fire_charge"
	ItemFireworkCharge       ItemType = "firework_charge"
	ItemFireworks            ItemType = "fireworks"
	ItemFish                 ItemType = "fish"
	ItemFishingRod           ItemType = "fishing_rod"
	ItemFlint                ItemType = "flint"
	ItemFlintAndSteel        ItemType = "flint_and_steel"
	ItemFlowerPot            ItemType = "flower_pot"
	ItemFurnaceMinecart      ItemType = "furnace_minecart"
	ItemGhastTear            ItemType = "ghast_tear"
	ItemGlassBottle          ItemType = "glass_bottle"
	ItemGlowstoneDust        ItemType = "glowstone_dust"
	ItemGoldIngot            ItemType = "gold_ingot"
	ItemGoldNugget           ItemType = "gold_nugget"
	ItemGoldenApple          ItemType = "golden_apple"
	ItemGoldenAxe            ItemType = "golden_axe"
	ItemGoldenBoots          ItemType = "golden_boots"
	ItemGoldenCarrot         ItemType = "golden_carrot"
	ItemGoldenChestplate     ItemType = "golden_chestplate"
	ItemGoldenHelmet         ItemType = "golden_helmet"
	ItemGoldenHoe            ItemType = "golden_hoe"
	ItemGoldenHorseArmor     ItemType = "golden_horse_armor"
	ItemGoldenLeggings       ItemType = "golden_leggings"
	ItemGoldenPickaxe        ItemType = "golden_pickaxe"
	ItemGoldenShovel         ItemType = "golden_shovel"
	ItemGoldenSword          ItemType = "golden_sword"
	ItemGunpowder            ItemType = "gunpowder"
	ItemHopperMinecart       ItemType = "hopper_minecart"
	ItemIronAxe              ItemType = "iron_axe"
	ItemIronBoots            ItemType = "iron_boots"
	ItemIronChestplate       ItemType = "iron_chestplate"
	ItemIronDoor             ItemType = "iron_door"
	ItemIronHelmet           ItemType = "iron_helmet"
	ItemIronHoe              ItemType = "iron_hoe"
	ItemIronHorseArmor       ItemType = "iron_horse_armor"
	ItemIronIngot            ItemType = "iron_ingot"
	ItemIronLeggings         ItemType = "iron_leggings"
	ItemIronNugget           ItemType = "iron_nugget"
	ItemIronPickaxe          ItemType = "iron_pickaxe"
	ItemIronShovel           ItemType = "iron_shovel"
	ItemIronSword            ItemType = "iron_sword"
	ItemItemFrame            ItemType = "item_frame"
	ItemJungleBoat           ItemType = "jungle_boat"
	ItemJungleDoor           ItemType = "jungle_door"
	ItemLavaBucket           ItemType = "lava_bucket"
	ItemLead                 ItemType = "lead"
	ItemLeather              ItemType = "leather"
	ItemLeatherBoots         ItemType = "leather_boots"
	ItemLeatherChestplate    ItemType = "leather_chestplate"
	ItemLeatherHelmet        ItemType = "leather_helmet"
	ItemLeatherLeggings      ItemType = "leather_leggings"
	ItemLingeringPotion      ItemType = "lingering_potion"
	ItemMagmaCream           ItemType = "magma_cream"
	ItemMap                  ItemType = "map"
	ItemMelon                ItemType = "melon"
	ItemMelonSeeds           ItemType = "melon_seeds"
	ItemMilkBucket           ItemType = "milk_bucket"
	ItemMinecart             ItemType = "minecart"
	ItemMushroomStew         ItemType = "mushroom_stew"
	ItemMutton               ItemType = "mutton"
	ItemNameTag              ItemType = "name_tag"
	ItemNetherStar           ItemType = "nether_star"
	ItemNetherWart           ItemType = "nether_wart"
	ItemNetherbrick          ItemType = "netherbrick"
	ItemPainting             ItemType = "painting"
	ItemPaper                ItemType = "paper"
	ItemPoisonousPotato      ItemType = "poisonous_potato"
	ItemPorkchop             ItemType = "porkchop"
	ItemPotato               ItemType = "potato"
	ItemPotion               ItemType = "potion"
	ItemPrismarineCrystals   ItemType = "prismarine_crystals"
	ItemPrismarineShard      ItemType = "prismarine_shard"
	ItemPumpkinPie           ItemType = "pumpkin_pie"
	ItemPumpkinSeeds         ItemType = "pumpkin_seeds"
	ItemQuartz               ItemType = "quartz"
	ItemRabbit               ItemType = "rabbit"
	ItemRabbitFoot           ItemType = "rabbit_foot"
	ItemRabbitHide           ItemType = "rabbit_hide"
	ItemRabbitStew           ItemType = "rabbit_stew"
	ItemRecord11             ItemType = "record_11"
	ItemRecord13             ItemType = "record_13"
	ItemRecordBlocks         ItemType = "record_blocks"
	ItemRecordCat            ItemType = "record_cat"
	ItemRecordChirp          ItemType = "record_chirp"
	ItemRecordFar            ItemType = "record_far"
	ItemRecordMall           ItemType = "record_mall"
	ItemRecordMellohi        ItemType = "record_mellohi"
	ItemRecordStal           ItemType = "record_stal"
	ItemRecordStrad          ItemType = "record_strad"
	ItemRecordWait           ItemType = "record_wait"
	ItemRecordWard           ItemType = "record_ward"
	ItemRedstone             ItemType = "redstone"
	ItemReeds                ItemType = "reeds"
	ItemRepeater             ItemType = "repeater"
	ItemRottenFlesh          ItemType = "rotten_flesh"
	ItemSaddle               ItemType = "saddle"
	ItemShears               ItemType = "shears"
	ItemShield               ItemType = "shield"
	ItemShulkerShell         ItemType = "shulker_shell"
	ItemSign                 ItemType = "sign"
	ItemSkull                ItemType = "skull"
	ItemSlimeBall            ItemType = "slime_ball"
	ItemSnowball             ItemType = "snowball"
	ItemSpawnEgg             ItemType = "spawn_egg"
	ItemSpeckledMelon        ItemType = "speckled_melon"
	ItemSpectralArrow        ItemType = "spectral_arrow"
	ItemSpiderEye            ItemType = "spider_eye"
	ItemSplashPotion         ItemType = "splash_potion"
	ItemSpruceBoat           ItemType = "spruce_boat"
	ItemSpruceDoor           ItemType = "spruce_door"
	ItemStick                ItemType = "stick"
	ItemStoneAxe             ItemType = "stone_axe"
	ItemStoneHoe             ItemType = "stone_hoe"
	ItemStonePickaxe         ItemType = "stone_pickaxe"
	ItemStoneShovel          ItemType = "stone_shovel"
	ItemStoneSword           ItemType = "stone_sword"
	ItemString               ItemType = "string"
	ItemSugar                ItemType = "sugar"
	ItemTippedArrow          ItemType = "tipped_arrow"
	ItemTntMinecart          ItemType = "tnt_minecart"
	ItemTotemOfUndying       ItemType = "totem_of_undying"
	ItemWaterBucket          ItemType = "water_bucket"
	ItemWheat                ItemType = "wheat"
	ItemWheatSeeds           ItemType = "wheat_seeds"
	ItemWoodenAxe            ItemType = "wooden_axe"
	ItemWoodenDoor           ItemType = "wooden_door"
	ItemWoodenHoe            ItemType = "wooden_hoe"
	ItemWoodenPickaxe        ItemType = "wooden_pickaxe"
	ItemWoodenShovel         ItemType = "wooden_shovel"
	ItemWoodenSword          ItemType = "wooden_sword"
	ItemWritableBook         ItemType = "writable_book"
	ItemWrittenBook          ItemType = "written_book"
)

var itemTypes = []ItemType{
	ItemAcaciaBoat,
	ItemAcaciaDoor,
	ItemApple,
	ItemArmorStand,
	ItemArrow,
	ItemBakedPotato,
	ItemBanner,
	ItemBed,
	ItemBeef,
	ItemBeetroot,
	ItemBeetrootSeeds,
	ItemBeetrootSoup,
	ItemBirchBoat,
	ItemBirchDoor,
	ItemBlazePowder,
	ItemBlazeRod,
	ItemBoat,
	ItemBone,
	ItemBook,
	ItemBow,
	ItemBowl,
	ItemBread,
	ItemBrewingStand,
	ItemBrick,
	ItemBucket,
	ItemCake,
	ItemCarrot,
	ItemCarrotOnAStick,
	ItemCauldron,
	ItemChainmailBoots,
	ItemChainmailChestplate,
	ItemChainmailHelmet,
	ItemChainmailLeggings,
	ItemChestMinecart,
	ItemChicken,
	ItemChorusFruit,
	ItemChorusFruitPopped,
	ItemClayBall,
	ItemClock,
	ItemCoal,
	ItemCommandBlockMinecart,
	ItemComparator,
	ItemCompass,
	ItemCookedBeef,
	ItemCookedChicken,
	ItemCookedFish,
	ItemCookedMutton,
	ItemCookedPorkchop,
	ItemCookedRabbit,
	ItemCookie,
	ItemDarkOakBoat,
	ItemDarkOakDoor,
	ItemDiamond,
	ItemDiamondAxe,
	ItemDiamondBoots,
	ItemDiamondChestplate,
	ItemDiamondHelmet,
	ItemDiamondHoe,
	ItemDiamondHorseArmor,
	ItemDiamondLeggings,
	ItemDiamondPickaxe,
	ItemDiamondShovel,
	ItemDiamondSword,
	ItemDragonBreath,
	ItemDye,
	ItemEgg,
	ItemElytra,
	ItemEmerald,
	ItemEnchantedBook,
	ItemEnderEye,
	ItemEnderPearl,
	ItemExperienceBottle,
	ItemFeather,
	ItemFermentedSpiderEye,
	ItemFilledMap,
	ItemFireCharge,
	ItemFireworkCharge,
	ItemFireworks,
	ItemFish,
	ItemFishingRod,
	ItemFlint,
	ItemFlintAndSteel,
	ItemFlowerPot,
	ItemFurnaceMinecart,
	ItemGhastTear,
	ItemGlassBottle,
	ItemGlowstoneDust,
	ItemGoldIngot,
	ItemGoldNugget,
	ItemGoldenApple,
	ItemGoldenAxe,
	ItemGoldenBoots,
	ItemGoldenCarrot,
	ItemGoldenChestplate,
	ItemGoldenHelmet,
	ItemGoldenHoe,
	ItemGoldenHorseArmor,
	ItemGoldenLeggings,
	ItemGoldenPickaxe,
	ItemGoldenShovel,
	ItemGoldenSword,
	ItemGunpowder,
	ItemHopperMinecart,
	ItemIronAxe,
	ItemIronBoots,
	ItemIronChestplate,
	ItemIronDoor,
	ItemIronHelmet,
	ItemIronHoe,
	ItemIronHorseArmor,
	ItemIronIngot,
	ItemIronLeggings,
	ItemIronNugget,
	ItemIronPickaxe,
	ItemIronShovel,
	ItemIronSword,
	ItemItemFrame,
	ItemJungleBoat,
	ItemJungleDoor,
	ItemLavaBucket,
	ItemLead,
	ItemLeather,
	ItemLeatherBoots,
	ItemLeatherChestplate,
	ItemLeatherHelmet,
	ItemLeatherLeggings,
	ItemLingeringPotion,
	ItemMagmaCream,
	ItemMap,
	ItemMelon,
	ItemMelonSeeds,
	ItemMilkBucket,
	ItemMinecart,
	ItemMushroomStew,
	ItemMutton,
	ItemNameTag,
	ItemNetherStar,
	ItemNetherWart,
	ItemNetherbrick,
	ItemPainting,
	ItemPaper,
	ItemPoisonousPotato,
	ItemPorkchop,
	ItemPotato,
	ItemPotion,
	ItemPrismarineCrystals,
	ItemPrismarineShard,
	ItemPumpkinPie,
	ItemPumpkinSeeds,
	ItemQuartz,
	ItemRabbit,
	ItemRabbitFoot,
	ItemRabbitHide,
	ItemRabbitStew,
	ItemRecord11,
	ItemRecord13,
	ItemRecordBlocks,
	ItemRecordCat,
	ItemRecordChirp,
	ItemRecordFar,
	ItemRecordMall,
	ItemRecordMellohi,
	ItemRecordStal,
	ItemRecordStrad,
	ItemRecordWait,
	ItemRecordWard,
	ItemRedstone,
	ItemReeds,
	ItemRepeater,
	ItemRottenFlesh,
	ItemSaddle,
	ItemShears,
	ItemShield,
	ItemShulkerShell,
	ItemSign,
	ItemSkull,
	ItemSlimeBall,
	ItemSnowball,
	ItemSpawnEgg,
	ItemSpeckledMelon,
	ItemSpectralArrow,
	ItemSpiderEye,
	ItemSplashPotion,
	ItemSpruceBoat,
	ItemSpruceDoor,
	ItemStick,
	ItemStoneAxe,
	ItemStoneHoe,
	ItemStonePickaxe,
	ItemStoneShovel,
	ItemStoneSword,
	ItemString,
	ItemSugar,
	ItemTippedArrow,
	ItemTntMinecart,
	ItemTotemOfUndying,
	ItemWaterBucket,
	ItemWheat,
	ItemWheatSeeds,
	ItemWoodenAxe,
	ItemWoodenDoor,
	ItemWoodenHoe,
	ItemWoodenPickaxe,
	ItemWoodenShovel,
	ItemWoodenSword,
	ItemWritableBook,
	ItemWrittenBook,
}

var foodItems = newItemSet(
	ItemApple,
	ItemBakedPotato,
	ItemBeef,
	ItemBeetrootSoup,
	ItemBread,
	ItemCake,
	ItemCarrot,
	ItemChicken,
	ItemCookedBeef,
	ItemCookedChicken,
	ItemCookedFish,
	ItemCookedMutton,
	ItemCookedPorkchop,
	ItemCookedRabbit,
	ItemCookie,
	ItemFish,
	ItemGoldenApple,
	ItemGoldenCarrot,
	ItemMushroomStew,
	ItemMutton,
	ItemPoisonousPotato,
	ItemPorkchop,
	ItemPotato,
	ItemPumpkinPie,
	ItemRabbit,
	ItemRabbitStew,
	ItemRottenFlesh,
)
